// Package processor contains the core pipeline of quintus. It loads the
// verse lines and the speech ranges, labels every line, profiles the sounds
// of each word concurrently and writes the resulting table as CSV and,
// optionally, into SQLite. This package serves as the main coordinator
// between all other components.
package processor
