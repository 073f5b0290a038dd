// Package loader turns a content directory into a seocheck.FileSet.
//
// Markdown files contribute their YAML front matter, HTML files the SEO tags
// found in their head. Every other file gets a bare record so custom
// toInspect patterns can still reach it. Records are added in lexical path
// order.
package loader
