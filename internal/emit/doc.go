// Package emit serializes generated artifacts. Each artifact becomes one
// YAML document, written either to a file named after its run or to an
// arbitrary writer, and a run summary can be rendered as a table for the
// CLI.
package emit
