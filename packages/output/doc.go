// Package output renders generation reports and inspected types for the
// expectgen command.
//
// The console formatter prints one colored line per wrapper as it goes. The
// JSON formatter buffers everything and writes a single document on Flush,
// so callers should check for Flushable once the run is over.
package output
