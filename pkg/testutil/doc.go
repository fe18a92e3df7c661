// Package testutil provides helpers for testing fprime-bootstrap components.
//
// Template trees and destination trees are kept in memory (afero) unless a
// test is specifically about the real filesystem:
//   - NewTemplateFS: inline template root as an io/fs.FS
//   - NewTestFS: in-memory destination
//   - CollectTree: read a generated tree back for comparison
//   - FailingFS / FailingSource: inject write and read failures
//   - NewTestEnvironment: run the same test in memory and on disk
package testutil
