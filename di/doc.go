// Package di implements the dependency-injection container the framework
// is assembled into. Bindings are collected from an ordered list of
// modules and the container is created in a single call; it is immutable
// afterwards. Production stage constructs eager bindings up front and
// validates every constructor, development stage defers construction to
// first resolve.
package di
