// Package recipe loads and validates the declarative .hcl recipe files that
// describe which model configurations to generate. A recipe file holds one
// or more `model` blocks; every attribute except the family label and size
// is optional, and missing attributes stay nil so they propagate as null
// into the generated configuration artifacts.
package recipe
