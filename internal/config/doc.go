// Package config defines the format-agnostic settings model of the ksparse
// tool together with the Loader interface that reads it from a file.
//
// The Model is the single source of truth for how documents are parsed:
// version, include handling, masking and registry overrides. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
