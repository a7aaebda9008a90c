// Package app contains the ksparse tool logic. It defines the App struct,
// its configuration, and the operations the command line exposes
// (validate, flatten, dump, verdiff, versions), decoupled from any specific
// entrypoint.
package app
