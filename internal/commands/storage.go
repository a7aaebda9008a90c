// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// Write priorities of the storage commands. The installer applies them in
// this order, so the output keeps it.
const (
	priorityAutoPart   = 100
	priorityZeroMBR    = 110
	priorityIgnoreDisk = 115
	priorityClearPart  = 120
	priorityPartition  = 130
	priorityRaid       = 131
	priorityVolGroup   = 132
	priorityLogVol     = 133
)

// Encryption holds the LUKS options shared by autopart, part, raid and
// logvol.
type Encryption struct {
	Encrypted        bool   `ks:"encrypted"`
	Passphrase       string `ks:"passphrase"`
	EscrowCert       string `ks:"escrowcert"`
	BackupPassphrase bool   `ks:"backuppassphrase"`
	Cipher           string `ks:"cipher"`
	LuksVersion      string `ks:"luks-version"`
}

func encryptionOptions() []options.Option {
	return []options.Option{
		{Name: "encrypted", Kind: options.Bool},
		{Name: "passphrase", Kind: options.String},
		{Name: "escrowcert", Kind: options.String},
		{Name: "backuppassphrase", Kind: options.Bool},
		{Name: "cipher", Kind: options.String, Introduced: version.F23},
		{Name: "luks-version", Kind: options.String, Introduced: version.F29},
	}
}

func (e Encryption) write(l *options.Line) {
	if !e.Encrypted {
		return
	}
	l.Flag("encrypted", true).
		Str("passphrase", e.Passphrase).
		Str("escrowcert", e.EscrowCert).
		Flag("backuppassphrase", e.BackupPassphrase).
		Str("cipher", e.Cipher).
		Str("luks-version", e.LuksVersion)
}

// formatOptions are the filesystem options shared by part, raid and logvol.
func formatOptions() []options.Option {
	return []options.Option{
		{Name: "fstype", Kind: options.String},
		{Name: "fsoptions", Kind: options.String},
		{Name: "mkfsoptions", Kind: options.String, Introduced: version.F25},
		{Name: "fsprofile", Kind: options.String},
		{Name: "label", Kind: options.String},
		{Name: "noformat", Kind: options.Bool},
	}
}

func join(groups ...[]options.Option) []options.Option {
	var out []options.Option
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// AutoPart creates the default partitioning layout. Repeated invocations
// overwrite the options they name.
type AutoPart struct {
	base
	Encryption
	Scheme string `ks:"type"`
	FSType string `ks:"fstype"`
	NoHome bool   `ks:"nohome"`
	NoBoot bool   `ks:"noboot"`
	NoSwap bool   `ks:"noswap"`
}

var autoPartSchema = &options.Schema{
	Command: "autopart",
	Options: join([]options.Option{
		{Name: "type", Kind: options.String, Choices: []string{"lvm", "btrfs", "plain", "thinp"}},
		{Name: "nolvm", Dest: "type", Kind: options.Bool, Const: "plain"},
		{Name: "fstype", Kind: options.String, Introduced: version.F26},
		{Name: "nohome", Kind: options.Bool, Introduced: version.F29},
		{Name: "noboot", Kind: options.Bool, Introduced: version.F29},
		{Name: "noswap", Kind: options.Bool, Introduced: version.F29},
	}, encryptionOptions()),
}

func newAutoPart(t Type) Command {
	return &AutoPart{base: newBase(t)}
}

func (c *AutoPart) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if res.Has("fstype") {
		if typ := res.String("type"); typ == "btrfs" || typ == "thinp" {
			return kserrors.New(kserrors.Value, "autopart --fstype cannot be used with --type=%s", typ)
		}
	}
	if res.Has("noswap") && res.String("type") == "btrfs" {
		return kserrors.New(kserrors.Value, "autopart --noswap cannot be used with --type=btrfs")
	}
	return options.Decode(res, c)
}

func (c *AutoPart) String() string {
	if !c.seen {
		return ""
	}
	l := options.NewLine("autopart").
		Str("type", c.Scheme).
		Str("fstype", c.FSType).
		Flag("nohome", c.NoHome).
		Flag("noboot", c.NoBoot).
		Flag("noswap", c.NoSwap)
	c.Encryption.write(l)
	return l.String()
}

// ReqPart creates the platform specific partitions only.
type ReqPart struct {
	base
	AddBoot bool `ks:"add-boot"`
}

var reqPartSchema = &options.Schema{
	Command: "reqpart",
	Options: []options.Option{{Name: "add-boot", Kind: options.Bool}},
}

func newReqPart(t Type) Command {
	return &ReqPart{base: newBase(t)}
}

func (c *ReqPart) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *ReqPart) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("reqpart").Flag("add-boot", c.AddBoot).String()
}

// ClearPart removes partitions before the new layout is created. --all,
// --linux, --none and --list select the mode; the last one given wins.
type ClearPart struct {
	base
	Mode      string   `ks:"type"`
	Devices   []string `ks:"list"`
	Drives    []string `ks:"drives"`
	InitLabel bool     `ks:"initlabel"`
	DiskLabel string   `ks:"disklabel"`
	CDL       bool     `ks:"cdl"`
}

var clearPartSchema = &options.Schema{
	Command: "clearpart",
	Options: []options.Option{
		{Name: "all", Dest: "type", Kind: options.Bool, Const: "all"},
		{Name: "linux", Dest: "type", Kind: options.Bool, Const: "linux"},
		{Name: "none", Dest: "type", Kind: options.Bool, Const: "none"},
		{Name: "list", Kind: options.List},
		{Name: "drives", Kind: options.List},
		{Name: "initlabel", Kind: options.Bool},
		{Name: "disklabel", Kind: options.String, Introduced: version.F21},
		{Name: "cdl", Kind: options.Bool, Introduced: version.F23},
	},
}

func newClearPart(t Type) Command {
	return &ClearPart{base: newBase(t)}
}

func (c *ClearPart) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if err := options.Decode(res, c); err != nil {
		return err
	}
	if res.Has("list") && !res.Has("type") {
		c.Mode = "list"
	}
	return nil
}

func (c *ClearPart) String() string {
	if !c.seen {
		return ""
	}
	l := options.NewLine("clearpart")
	switch c.Mode {
	case "all", "linux", "none":
		l.Flag(c.Mode, true)
	case "list":
		l.List("list", c.Devices)
	}
	return l.List("drives", c.Drives).
		Flag("initlabel", c.InitLabel).
		Str("disklabel", c.DiskLabel).
		Flag("cdl", c.CDL).
		String()
}

// IgnoreDisk restricts the disks the installer may touch.
type IgnoreDisk struct {
	base
	Drives      []string `ks:"drives"`
	OnlyUse     []string `ks:"only-use"`
	Interactive bool     `ks:"interactive"`
}

var ignoreDiskSchema = &options.Schema{
	Command: "ignoredisk",
	Options: []options.Option{
		{Name: "drives", Kind: options.List},
		{Name: "only-use", Aliases: []string{"onlyuse"}, Kind: options.List},
		{Name: "interactive", Kind: options.Bool},
	},
}

func newIgnoreDisk(t Type) Command {
	return &IgnoreDisk{base: newBase(t)}
}

func (c *IgnoreDisk) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if err := exclusive(res, inv.Keyword, "drives", "only-use", "interactive"); err != nil {
		return err
	}
	if !res.Has("drives") && !res.Has("only-use") && !res.Has("interactive") {
		return kserrors.New(kserrors.Value, "one of --drives or --only-use must be specified for ignoredisk")
	}
	c.Drives, c.OnlyUse, c.Interactive = nil, nil, false
	return options.Decode(res, c)
}

func (c *IgnoreDisk) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("ignoredisk").
		List("drives", c.Drives).
		List("only-use", c.OnlyUse).
		Flag("interactive", c.Interactive).
		String()
}

// ZeroMBR initializes invalid partition tables without asking.
type ZeroMBR struct {
	base
}

func newZeroMBR(t Type) Command {
	return &ZeroMBR{base: newBase(t)}
}

// Parse accepts and ignores stray arguments, which older releases took.
func (c *ZeroMBR) Parse(inv *Invocation) error {
	if len(inv.Args) > 0 {
		inv.Warn(kserrors.Deprecation, "ignoring deprecated option on the zerombr command: it no longer takes any options")
	}
	c.line = inv.Line
	c.seen = true
	return nil
}

func (c *ZeroMBR) String() string {
	if !c.seen {
		return ""
	}
	return "zerombr\n"
}

var storageTypes = []Type{
	{Name: "F20_AutoPart", Keyword: "autopart", Version: version.F20, Priority: priorityAutoPart, Schemas: schemas(autoPartSchema), New: newAutoPart},
	{Name: "F23_AutoPart", Keyword: "autopart", Version: version.F23, Priority: priorityAutoPart, Schemas: schemas(autoPartSchema), New: newAutoPart},
	{Name: "F26_AutoPart", Keyword: "autopart", Version: version.F26, Priority: priorityAutoPart, Schemas: schemas(autoPartSchema), New: newAutoPart},
	{Name: "F29_AutoPart", Keyword: "autopart", Version: version.F29, Priority: priorityAutoPart, Schemas: schemas(autoPartSchema), New: newAutoPart},

	{Name: "F23_ReqPart", Keyword: "reqpart", Version: version.F23, Priority: priorityAutoPart, Schemas: schemas(reqPartSchema), New: newReqPart},

	{Name: "F20_ClearPart", Keyword: "clearpart", Version: version.F20, Priority: priorityClearPart, Schemas: schemas(clearPartSchema), New: newClearPart},
	{Name: "F21_ClearPart", Keyword: "clearpart", Version: version.F21, Priority: priorityClearPart, Schemas: schemas(clearPartSchema), New: newClearPart},
	{Name: "F23_ClearPart", Keyword: "clearpart", Version: version.F23, Priority: priorityClearPart, Schemas: schemas(clearPartSchema), New: newClearPart},

	{Name: "F20_IgnoreDisk", Keyword: "ignoredisk", Version: version.F20, Priority: priorityIgnoreDisk, Schemas: schemas(ignoreDiskSchema), New: newIgnoreDisk},

	{Name: "F20_ZeroMBR", Keyword: "zerombr", Version: version.F20, Priority: priorityZeroMBR, New: newZeroMBR},
}
