// Package store reads and writes one settings document per configuration
// scope.
//
// The store is a generic document accessor: it knows nothing about settings
// semantics, only how to resolve a scope to its configured location, decode
// the document found there, and persist a document back. A missing file is
// not an error; it reads as an empty document.
//
// The document codec is late-bound. The default is YAML via gopkg.in/yaml.v3,
// but a store constructed with a nil codec stays usable as a value and only
// fails (with remediation guidance) on the first read or write.
//
// The filesystem is injectable via afero, so tests can run against an
// in-memory filesystem and embedding applications can point the store at any
// backend afero supports.
package store
