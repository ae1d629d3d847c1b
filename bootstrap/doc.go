// Package bootstrap orchestrates framework startup and shutdown. It
// assembles framework-internal and application-supplied modules into a
// single container in a fixed order, compiles the route table, logs the
// resulting routing and engine tables, and enforces the one-boot
// lifecycle.
//
// Applications plug in by registering factories under well-known
// convention names (conf.Module, conf.DispatchModule, conf.Routes,
// conf.App), optionally namespaced by the application.modules.package
// property. Every convention slot is optional: a missing registration
// is silently replaced by the framework default.
package bootstrap
