// Package scanner discovers content files below a directory.
//
// The scanner walks a filesystem.FileSystemProvider, prunes directories and
// files matching doublestar exclude globs, reads the remaining files and
// returns them sorted by relative path so every run sees the same order.
package scanner
