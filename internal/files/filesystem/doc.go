// Package filesystem abstracts the content tree the loader reads, so the
// same loading code runs against the local disk and an in-memory tree in
// tests.
//
// Implementations:
//   - OSFileSystem: the local disk
//   - MemoryFileSystem: an in-memory tree for testing
package filesystem
