// Package batch provides utilities for tools that operate on several
// sheets in one invocation.
//
// This package includes helpers for:
//   - Parsing parameters that accept both single values and arrays
//   - Processing each item independently so one missing sheet does not
//     abort the rest
//   - Formatting per-item results, labeled with the error kind, in a
//     consistent JSON structure
package batch
