// Package model defines the values exchanged while composing a diagnostics
// report.
//
// This package contains the following main types:
//   - Chapter: one titled section produced by a single reporter
//   - Fragment: the body of a chapter (Text, Table, Code or trusted HTML)
//   - Report: the final named, UTF-8 encoded document returned to callers
//
// The types live in their own package so that the renderer (report), the
// built-in reporters (reporters) and third-party reporters can share them
// without import cycles.
package model
