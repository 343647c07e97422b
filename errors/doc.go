// Package errors defines the configuration error taxonomy.
//
// There are three tiers:
//
//   - ConfigError: base error with a user-friendly message and an actionable
//     suggestion. Covers conditions like a missing YAML codec.
//   - FileError: reading or writing a backing settings file failed for I/O or
//     decode reasons. A file that simply does not exist is NOT an error; it
//     resolves to an empty document.
//   - ValidationError: structurally invalid data was submitted for
//     persistence, e.g. a project-only field written to another scope.
//
// All errors surface synchronously to the caller; nothing is retried or
// swallowed. Use the Is* predicates to classify errors across wrapping.
package errors
