package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path into a Model. Settings the file
	// does not mention keep the values of Default.
	Load(ctx context.Context, path string) (*Model, error)
}

// Model holds the settings that control how documents are parsed.
type Model struct {
	// Version names the kickstart syntax, e.g. "F29"; empty means DEVEL.
	Version             string
	FollowIncludes      bool
	MissingIncludeFatal bool
	KeepComments        bool
	// MaskAllExcept, when non-empty, masks every command not listed.
	MaskAllExcept []string
	// Overrides maps a keyword to a command variant name.
	Overrides map[string]string
	// DataOverrides maps a data kind to a data variant name.
	DataOverrides map[string]string
}

// Default returns the settings used when no file is given.
func Default() *Model {
	return &Model{
		FollowIncludes:      true,
		MissingIncludeFatal: true,
		Overrides:           map[string]string{},
		DataOverrides:       map[string]string{},
	}
}
