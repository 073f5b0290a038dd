// Package files groups the content-reading sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: file discovery with doublestar excludes
//   - loader: builds seocheck records from Markdown front matter and HTML heads
//
// # Usage
//
//	fsys := filesystem.NewOSFileSystem()
//	l, err := loader.New(fsys, opts, logger)
//	if err != nil {
//	    return err
//	}
//	files, err := l.Load("./content")
package files
