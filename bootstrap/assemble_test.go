package bootstrap

import (
	"strings"
	"testing"

	"github.com/ronin-framework/ronin/config"
	"github.com/ronin-framework/ronin/di"
)

func testFrameworkConfig(t *testing.T) *config.FrameworkConfig {
	t.Helper()
	cfg, err := config.FrameworkOf(config.NewProperties())
	if err != nil {
		t.Fatalf("FrameworkOf failed: %v", err)
	}
	return cfg
}

func TestAssembleDefaultModuleOrder(t *testing.T) {
	cfg := testFrameworkConfig(t)
	modules, err := assembleModules(config.NewProperties(), cfg, NewConventions())
	if err != nil {
		t.Fatalf("assembleModules failed: %v", err)
	}
	// Without conf.Module the list is lifecycle, scheduler, base,
	// context, dispatch, application.
	if len(modules) != 6 {
		t.Fatalf("got %d modules, want 6", len(modules))
	}
	if _, ok := modules[2].(*frameworkBase); !ok {
		t.Errorf("slot 3 is %T, want *frameworkBase", modules[2])
	}
	if _, ok := modules[3].(contextDefaults); !ok {
		t.Errorf("slot 4 is %T, want contextDefaults", modules[3])
	}
	if _, ok := modules[4].(dispatchDefaults); !ok {
		t.Errorf("slot 5 is %T, want dispatchDefaults", modules[4])
	}
	if _, ok := modules[5].(*appModule); !ok {
		t.Errorf("slot 6 is %T, want *appModule", modules[5])
	}
}

func TestAssembleIncludesApplicationModule(t *testing.T) {
	cfg := testFrameworkConfig(t)
	conventions := NewConventions()
	appMod := di.ModuleFunc(func(b *di.Binder) {
		b.BindSingleton("custom.service", "hello")
	})
	conventions.Register(ModuleConvention, func(di.Resolver) (interface{}, error) {
		return appMod, nil
	})

	modules, err := assembleModules(config.NewProperties(), cfg, conventions)
	if err != nil {
		t.Fatalf("assembleModules failed: %v", err)
	}
	if len(modules) != 7 {
		t.Fatalf("got %d modules, want 7", len(modules))
	}
	// The application module occupies slot 5, between context and dispatch.
	if _, ok := modules[4].(di.ModuleFunc); !ok {
		t.Errorf("slot 5 is %T, want the application module", modules[4])
	}
}

func TestAssembleRejectsMalformedModule(t *testing.T) {
	cfg := testFrameworkConfig(t)
	conventions := NewConventions()
	conventions.Register(ModuleConvention, func(di.Resolver) (interface{}, error) {
		return "not a module", nil
	})

	_, err := assembleModules(config.NewProperties(), cfg, conventions)
	if err == nil {
		t.Fatal("expected error for non-module conf.Module")
	}
	if !strings.Contains(err.Error(), ModuleConvention) {
		t.Errorf("error should name the convention: %v", err)
	}
	if !strings.Contains(err.Error(), "string") {
		t.Errorf("error should name the offending type: %v", err)
	}
}

func TestAssembleRejectsMalformedApp(t *testing.T) {
	cfg := testFrameworkConfig(t)
	conventions := NewConventions()
	conventions.Register(AppConvention, func(di.Resolver) (interface{}, error) {
		return 42, nil
	})

	_, err := assembleModules(config.NewProperties(), cfg, conventions)
	if err == nil {
		t.Fatal("expected error for non-application conf.App")
	}
	if !strings.Contains(err.Error(), AppConvention) {
		t.Errorf("error should name the convention: %v", err)
	}
}

func TestAssembleDefaultApplicationWhenAbsent(t *testing.T) {
	cfg := testFrameworkConfig(t)
	modules, err := assembleModules(config.NewProperties(), cfg, NewConventions())
	if err != nil {
		t.Fatalf("assembleModules failed: %v", err)
	}

	last, ok := modules[len(modules)-1].(*appModule)
	if !ok {
		t.Fatalf("last module is %T, want *appModule", modules[len(modules)-1])
	}
	app, ok := last.app.(*DefaultApplication)
	if !ok {
		t.Fatalf("app is %T, want *DefaultApplication", last.app)
	}
	if app.Name != cfg.Application.Name {
		t.Errorf("default application name %q, want %q", app.Name, cfg.Application.Name)
	}
}

func TestAssembleCustomDispatchReplacesDefault(t *testing.T) {
	cfg := testFrameworkConfig(t)
	conventions := NewConventions()
	custom := di.ModuleFunc(func(b *di.Binder) {
		b.BindSingleton(di.Framework.Dispatcher, "custom-dispatcher")
	})
	conventions.Register(DispatchConvention, func(di.Resolver) (interface{}, error) {
		return custom, nil
	})

	modules, err := assembleModules(config.NewProperties(), cfg, conventions)
	if err != nil {
		t.Fatalf("assembleModules failed: %v", err)
	}
	for _, m := range modules {
		if _, ok := m.(dispatchDefaults); ok {
			t.Fatal("default dispatch module assembled alongside conf.DispatchModule")
		}
	}

	container, err := di.New(di.Production, modules...)
	if err != nil {
		t.Fatalf("di.New failed: %v", err)
	}
	d := di.MustResolve[string](container, di.Framework.Dispatcher)
	if d != "custom-dispatcher" {
		t.Errorf("got dispatcher %q, want custom-dispatcher", d)
	}
}

func TestAssemblePrefixedConventionNames(t *testing.T) {
	props := config.NewProperties()
	props.Set(config.KeyApplicationModulesPackage, "myapp")
	cfg, err := config.FrameworkOf(props)
	if err != nil {
		t.Fatalf("FrameworkOf failed: %v", err)
	}

	conventions := NewConventions()
	called := false
	conventions.Register("myapp.conf.Module", func(di.Resolver) (interface{}, error) {
		called = true
		return di.ModuleFunc(func(*di.Binder) {}), nil
	})
	// Unprefixed registration must be ignored once a prefix is configured.
	conventions.Register(ModuleConvention, func(di.Resolver) (interface{}, error) {
		t.Fatal("unprefixed conf.Module must not be used")
		return nil, nil
	})

	if _, err := assembleModules(props, cfg, conventions); err != nil {
		t.Fatalf("assembleModules failed: %v", err)
	}
	if !called {
		t.Error("prefixed conf.Module factory never called")
	}
}
