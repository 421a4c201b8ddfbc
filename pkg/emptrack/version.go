// Package emptrack holds build metadata for the emptrack tool.
package emptrack

// Version is the emptrack release version.
const Version = "0.3.0"
