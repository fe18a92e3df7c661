// Package materialize turns a template tree into a project tree.
//
// A Materializer reads from an io/fs.FS template root, which it never
// writes to, and writes through a types.FS. A run has two phases:
//
//   - Plan walks the template root once, top-down, and computes the
//     destination path of every entry with template.TransformName. Invalid
//     names and two entries landing on the same destination path are
//     reported here, before anything is written.
//   - Apply processes every planned entry exactly once, in walk order.
//     Directories are created idempotently; files are read, substituted when
//     they are text, and written atomically.
//
// The first error stops the run. Nothing is rolled back: whatever was
// written stays on disk for the caller to inspect. Verify checks the
// post-condition of a finished run: no generated name ends in the marker
// suffix and no generated text file still contains a bound token.
//
// A Materializer holds no per-run state, so one value can serve runs against
// different destination roots concurrently. Two runs against the same root
// are not coordinated.
package materialize
