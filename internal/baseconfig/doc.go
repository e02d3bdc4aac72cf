// Package baseconfig assembles the default training, optimizer, data, and
// run configuration for a single pretraining job. The Basic type holds a
// handful of scalar run parameters and derives the four configuration
// records from them; model-family specifics live in the profile packages
// that build on top of it.
package baseconfig
