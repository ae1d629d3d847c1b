package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPropertiesEmpty(t *testing.T) {
	p := NewProperties()
	if p.IsSet(KeyApplicationModulesPackage) {
		t.Error("expected modules package to be unset")
	}
	if p.ModulesPackage() != "" {
		t.Errorf("expected empty modules package, got %q", p.ModulesPackage())
	}
	if p.Mode() != ModeProd {
		t.Errorf("expected default mode prod, got %q", p.Mode())
	}
}

func TestPropertiesSetAndGet(t *testing.T) {
	p := NewProperties()
	p.Set(KeyApplicationName, "myapp")
	p.Set(KeyApplicationModulesPackage, "myapp")
	p.Set(KeyApplicationMode, ModeTest)

	if got := p.Get(KeyApplicationName); got != "myapp" {
		t.Errorf("expected 'myapp', got %q", got)
	}
	if got := p.ModulesPackage(); got != "myapp" {
		t.Errorf("expected modules package 'myapp', got %q", got)
	}
	if got := p.Mode(); got != ModeTest {
		t.Errorf("expected mode test, got %q", got)
	}
}

func TestGetOrDefault(t *testing.T) {
	p := NewProperties()
	if got := p.GetOrDefault("missing.key", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	p.Set("present.key", "value")
	if got := p.GetOrDefault("present.key", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
}

func TestLoadPropertiesFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "application.yml")
	content := []byte("application:\n  name: filetest\n  mode: dev\n  modules:\n    package: filetest\n")
	if err := os.WriteFile(file, content, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProperties(WithConfigFile(file))
	if err != nil {
		t.Fatalf("LoadProperties failed: %v", err)
	}
	if got := p.Get(KeyApplicationName); got != "filetest" {
		t.Errorf("expected 'filetest', got %q", got)
	}
	if got := p.Mode(); got != ModeDev {
		t.Errorf("expected mode dev, got %q", got)
	}
	if got := p.ModulesPackage(); got != "filetest" {
		t.Errorf("expected modules package 'filetest', got %q", got)
	}
}

func TestLoadPropertiesMissingFilesIsValid(t *testing.T) {
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	p, err := LoadProperties()
	if err != nil {
		t.Fatalf("LoadProperties with no files failed: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil properties")
	}
}

func TestFrameworkOfDefaults(t *testing.T) {
	p := NewProperties()
	cfg, err := FrameworkOf(p)
	if err != nil {
		t.Fatalf("FrameworkOf failed: %v", err)
	}
	if cfg.Application.Name != "ronin" {
		t.Errorf("expected default name 'ronin', got %q", cfg.Application.Name)
	}
	if cfg.Application.Mode != ModeProd {
		t.Errorf("expected default mode prod, got %q", cfg.Application.Mode)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default logging level info, got %q", cfg.Logging.Level)
	}
}

func TestFrameworkOfRejectsBadMode(t *testing.T) {
	p := NewProperties()
	p.Set(KeyApplicationMode, "staging")
	if _, err := FrameworkOf(p); err == nil {
		t.Error("expected error for invalid mode")
	}
}
