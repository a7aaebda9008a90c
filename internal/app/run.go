package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gokickstart/internal/dump"
	"github.com/specialistvlad/gokickstart/internal/fsutil"
	"github.com/specialistvlad/gokickstart/internal/registry"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// Validate parses every kickstart file found under paths and reports one
// line per file, followed by its warnings. It returns the number of files
// that failed to parse.
func (a *App) Validate(ctx context.Context, paths ...string) (int, error) {
	ctx = a.context(ctx)
	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, fsutil.KickstartExtensions...)
		if err != nil {
			return 0, fmt.Errorf("failed to scan %s: %w", p, err)
		}
		files = append(files, found...)
	}
	a.logger.Debug("Kickstart files discovered.", "count", len(files))

	failed := 0
	for _, f := range files {
		h, err := a.ParseFile(ctx, f)
		if err != nil {
			failed++
			fmt.Fprintf(a.outW, "FAIL %s: %v\n", f, err)
			continue
		}
		fmt.Fprintf(a.outW, "OK   %s\n", f)
		for _, w := range h.Warnings() {
			fmt.Fprintf(a.outW, "     %s: %s\n", w.Kind, w)
		}
	}
	a.logger.Info("Validation finished.", "files", len(files), "failed", failed)
	return failed, nil
}

// Flatten writes the canonical form of the document at path, with its
// includes expanded unless configured otherwise.
func (a *App) Flatten(ctx context.Context, path string) error {
	h, err := a.ParseFile(ctx, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(a.outW, h.String())
	return err
}

// Dump writes the parsed content of the document at path as YAML.
func (a *App) Dump(ctx context.Context, path string) error {
	h, err := a.ParseFile(ctx, path)
	if err != nil {
		return err
	}
	doc, err := dump.From(h)
	if err != nil {
		return err
	}
	return dump.Write(a.outW, doc)
}

// VerDiff writes the syntax changes between two versions, one per line.
func (a *App) VerDiff(from, to version.Version) error {
	changes, err := registry.Diff(from, to)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		_, err = fmt.Fprintf(a.outW, "no differences between %s and %s\n", from, to)
		return err
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(a.outW, c); err != nil {
			return err
		}
	}
	return nil
}

// Versions writes the supported versions, oldest first.
func (a *App) Versions() error {
	latest := version.Latest()
	for _, v := range version.All() {
		line := v.String()
		if v == latest {
			line += " (DEVEL)"
		}
		if _, err := fmt.Fprintln(a.outW, line); err != nil {
			return err
		}
	}
	return nil
}
