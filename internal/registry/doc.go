// Package registry maps kickstart keywords and data kinds to the command
// and data variants a given syntax version uses.
//
// Each supported version has its own fully spelled out table (see
// tables.go), so the set of commands a release accepts is answered by
// reading one table rather than by following variant inheritance. A
// Registry is built per parse session with For; caller overrides are merged
// into the fresh copy at construction and the stock tables are never
// mutated.
//
// Validate checks the tables against the command catalog: every name
// resolves, every keyword has a schema, every data command finds its data
// kind, and a variant parses the same option set at the variant's version
// as at the table's version.
package registry
