// Package router owns the route table and its compilation onto the
// dispatch engine. Routes are declared through a builder DSL before
// boot finishes; CompileRoutes finalizes the table exactly once and
// mounts every handler on the underlying gin engine.
package router
