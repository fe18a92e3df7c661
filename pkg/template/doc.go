// Package template holds the two pure rules a template tree is expanded with.
//
// Names: an entry whose name ends in MarkerSuffix ("-template") loses the
// suffix in the generated tree; every other name is kept as is. The rule is
// the same for files and directories.
//
// Content: every literal occurrence of a bound placeholder token, such as
// {{FPRIME_PROJECT_NAME}}, is replaced by its value in a single left to right
// pass. Replacement values are never scanned again, so a value that happens to
// contain a token does not expand further.
//
// Neither rule touches a filesystem; walking and writing belong to the
// materialize package.
package template
