// Package config loads the expectgen.yaml file that lists which types get
// assertion wrappers. Each target names a package pattern, the types in it,
// and where the generated files go. Command line flags are merged on top of
// the file with Config.Merge and the result checked with Config.Validate.
package config
