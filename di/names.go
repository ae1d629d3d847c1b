package di

// FrameworkNames defines the binding keys for the framework layer.
// Applications use these to resolve framework services from the
// container and to override framework bindings from their own modules.
type FrameworkNames struct {
	// Core services
	Properties string
	Config     string
	Logger     string

	// Routing and dispatch
	Router     string
	Context    string
	Dispatcher string

	// Engines
	TemplateEngines   string
	BodyParserEngines string

	// Lifecycle
	Lifecycle   string
	Scheduler   string
	Application string
}

// Framework contains all binding keys for the framework layer.
var Framework = FrameworkNames{
	Properties: "config.properties",
	Config:     "config.framework",
	Logger:     "logger",

	Router:     "router",
	Context:    "router.context",
	Dispatcher: "dispatch.handler",

	TemplateEngines:   "engine.templates",
	BodyParserEngines: "engine.bodyparsers",

	Lifecycle:   "lifecycle.support",
	Scheduler:   "scheduler.support",
	Application: "application",
}
