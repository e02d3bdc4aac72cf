// Package registry provides the central glue for the model-family system.
//
// The Registry maps the family names used in recipes (e.g. "gpt3") to the
// compiled Go builders that produce a family's profile. It is populated at
// application startup by the family packages and consulted once per recipe
// during generation, preventing a class of "unknown family" errors from
// surfacing deep inside the pipeline.
package registry
