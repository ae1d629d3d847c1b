package di

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmptyContainer(t *testing.T) {
	c, err := New(Production)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c == nil {
		t.Fatal("expected non-nil container")
	}
}

func TestBindAndResolve(t *testing.T) {
	m := ModuleFunc(func(b *Binder) {
		b.Bind("greeting", func() string { return "hello" })
	})

	c, err := New(Production, m)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	val, err := c.Resolve("greeting")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if val != "hello" {
		t.Errorf("expected 'hello', got %v", val)
	}
}

func TestResolveUnbound(t *testing.T) {
	c, _ := New(Production)
	_, err := c.Resolve("nonexistent")
	if err == nil {
		t.Fatal("expected error for unbound key")
	}
	if !strings.Contains(err.Error(), "no binding") {
		t.Errorf("expected 'no binding' in error, got %q", err.Error())
	}
}

func TestBindSingleton(t *testing.T) {
	type service struct{ name string }
	instance := &service{name: "svc"}

	c, err := New(Production, ModuleFunc(func(b *Binder) {
		b.BindSingleton("svc", instance)
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	val, err := c.Resolve("svc")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if val != instance {
		t.Error("expected the pre-created instance")
	}
}

func TestEagerConstructedDuringNew(t *testing.T) {
	constructed := false
	_, err := New(Production, ModuleFunc(func(b *Binder) {
		b.BindEager("eager", func() string {
			constructed = true
			return "built"
		})
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !constructed {
		t.Error("expected eager binding constructed during New")
	}
}

func TestEagerConstructorErrorAbortsNew(t *testing.T) {
	_, err := New(Production, ModuleFunc(func(b *Binder) {
		b.BindEager("broken", func() (string, error) {
			return "", errors.New("constructor blew up")
		})
	}))
	if err == nil {
		t.Fatal("expected New to fail")
	}
	if !strings.Contains(err.Error(), "constructor blew up") {
		t.Errorf("expected cause in error, got %q", err.Error())
	}
}

func TestProductionValidatesLazyConstructors(t *testing.T) {
	_, err := New(Production, ModuleFunc(func(b *Binder) {
		b.Bind("bad", "not a function")
	}))
	if err == nil {
		t.Fatal("expected New to reject non-function constructor")
	}
}

func TestDevelopmentDefersConstruction(t *testing.T) {
	constructed := false
	c, err := New(Development, ModuleFunc(func(b *Binder) {
		b.BindEager("deferred", func() string {
			constructed = true
			return "built"
		})
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if constructed {
		t.Error("development stage should not construct during New")
	}

	if _, err := c.Resolve("deferred"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !constructed {
		t.Error("expected construction on first resolve")
	}
}

func TestLazyConstructedOnce(t *testing.T) {
	calls := 0
	c, _ := New(Production, ModuleFunc(func(b *Binder) {
		b.Bind("counted", func() int {
			calls++
			return calls
		})
	}))

	first, _ := c.Resolve("counted")
	second, _ := c.Resolve("counted")
	if first != second {
		t.Errorf("expected cached instance, got %v then %v", first, second)
	}
	if calls != 1 {
		t.Errorf("expected 1 construction, got %d", calls)
	}
}

func TestConstructorReceivesResolver(t *testing.T) {
	c, err := New(Production, ModuleFunc(func(b *Binder) {
		b.BindSingleton("dep", "dependency")
		b.Bind("consumer", func(r Resolver) (string, error) {
			dep, err := r.Resolve("dep")
			if err != nil {
				return "", err
			}
			return "got:" + dep.(string), nil
		})
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	val, err := c.Resolve("consumer")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if val != "got:dependency" {
		t.Errorf("expected 'got:dependency', got %v", val)
	}
}

func TestLaterModuleOverridesEarlier(t *testing.T) {
	first := ModuleFunc(func(b *Binder) {
		b.BindSingleton("value", "first")
	})
	second := ModuleFunc(func(b *Binder) {
		b.BindSingleton("value", "second")
	})

	c, err := New(Production, first, second)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	val, _ := c.Resolve("value")
	if val != "second" {
		t.Errorf("expected later module to win, got %v", val)
	}
}

func TestRegistrations(t *testing.T) {
	c, _ := New(Production, ModuleFunc(func(b *Binder) {
		b.BindSingleton("a", 1)
		b.BindEager("b", func() int { return 2 })
		b.Bind("c", func() int { return 3 })
	}))

	regs := c.Registrations()
	if len(regs) != 3 {
		t.Fatalf("expected 3 registrations, got %d", len(regs))
	}
	if regs[0].Key != "a" || regs[1].Key != "b" || regs[2].Key != "c" {
		t.Errorf("expected binding order preserved, got %+v", regs)
	}
	if !regs[0].Initialized || !regs[1].Initialized {
		t.Error("expected singleton and eager bindings initialized")
	}
	if regs[2].Initialized {
		t.Error("expected lazy binding uninitialized before resolve")
	}
}

type closableService struct {
	closed bool
}

func (s *closableService) Close() error {
	s.closed = true
	return nil
}

func TestCloseClosesConstructedInstances(t *testing.T) {
	svc := &closableService{}
	c, _ := New(Production, ModuleFunc(func(b *Binder) {
		b.BindSingleton("closable", svc)
	}))

	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !svc.closed {
		t.Error("expected instance closed")
	}
}

func TestTypedResolve(t *testing.T) {
	c, _ := New(Production, ModuleFunc(func(b *Binder) {
		b.BindSingleton("num", 42)
	}))

	n, err := Resolve[int](c, "num")
	if err != nil {
		t.Fatalf("Resolve[int] failed: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}

	if _, err := Resolve[string](c, "num"); err == nil {
		t.Error("expected type mismatch error")
	}

	if _, ok := TryResolve[int](c, "missing"); ok {
		t.Error("expected TryResolve to report absence")
	}

	if got := MustResolve[int](c, "num"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestMustResolvePanicsOnMissing(t *testing.T) {
	c, _ := New(Production)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing binding")
		}
	}()
	MustResolve[int](c, "missing")
}
