// Package migrations holds the schema migration steps. Each file registers
// its steps in init(); the CLI imports this package for its side effects.
package migrations
