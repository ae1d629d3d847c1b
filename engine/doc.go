// Package engine holds the content-type keyed registries for template
// engines and body-parser engines. The registries are populated while
// the container is assembled and are read-only afterwards; the bootstrap
// only enumerates them for diagnostics.
package engine
