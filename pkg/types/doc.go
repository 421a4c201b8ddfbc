// Package types defines the entities, configuration, and standard errors
// shared by the emptrack store, menu, and CLI.
package types
