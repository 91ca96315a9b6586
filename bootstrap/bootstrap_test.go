package bootstrap

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/sttproxy/component"
	"github.com/kbukum/sttproxy/config"
	"github.com/kbukum/sttproxy/logger"
)

type testConfig struct {
	config.ServiceConfig
}

type mockComponent struct {
	name     string
	startErr error
	health   component.Health
	started  bool
	stopped  bool
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	m.started = true
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	m.stopped = true
	return nil
}
func (m *mockComponent) Health(ctx context.Context) component.Health { return m.health }

func newTestConfig(name string) *testConfig {
	return &testConfig{ServiceConfig: config.ServiceConfig{Name: name, Version: "1.0.0", Environment: "development"}}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(newTestConfig("sttproxy"))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Name != "sttproxy" || app.Version != "1.0.0" {
		t.Errorf("unexpected name/version %q %q", app.Name, app.Version)
	}
	if app.Components == nil || app.Logger == nil {
		t.Error("expected registry and logger")
	}
	if app.gracefulTimeout != defaultGracefulTimeout {
		t.Errorf("expected default graceful timeout, got %v", app.gracefulTimeout)
	}
	if app.Cfg.Logging.Level != "info" {
		t.Errorf("expected defaults applied to typed config, got %q", app.Cfg.Logging.Level)
	}
}

func TestNewAppValidation(t *testing.T) {
	if _, err := NewApp(&testConfig{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestNewAppWithOptions(t *testing.T) {
	l := logger.NewDefault("custom")
	app, err := NewApp(newTestConfig("sttproxy"), WithGracefulTimeout(30*time.Second), WithLogger(l))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.gracefulTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", app.gracefulTimeout)
	}
	if app.Logger != l {
		t.Error("expected custom logger")
	}
}

func TestStartAndShutdown(t *testing.T) {
	app, _ := NewApp(newTestConfig("sttproxy"))
	c := &mockComponent{name: "server", health: component.Health{Name: "server", Status: component.StatusHealthy}}
	if err := app.RegisterComponent(c); err != nil {
		t.Fatalf("RegisterComponent failed: %v", err)
	}

	var order []string
	app.OnStart(func(ctx context.Context) error {
		order = append(order, "start-hook")
		return nil
	})
	app.OnStop(func(ctx context.Context) error {
		if c.stopped {
			t.Error("OnStop hook must run before components stop")
		}
		order = append(order, "stop-hook")
		return nil
	})

	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !c.started {
		t.Error("expected component started")
	}
	if err := app.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if !c.stopped {
		t.Error("expected component stopped")
	}
	if strings.Join(order, ",") != "start-hook,stop-hook" {
		t.Errorf("unexpected hook order %v", order)
	}
}

func TestStartFailureStopsStarted(t *testing.T) {
	app, _ := NewApp(newTestConfig("sttproxy"))
	first := &mockComponent{name: "transcription"}
	second := &mockComponent{name: "server", startErr: errors.New("port in use")}
	_ = app.RegisterComponent(first)
	_ = app.RegisterComponent(second)

	err := app.Start(context.Background())
	if err == nil || !strings.Contains(err.Error(), "port in use") {
		t.Fatalf("expected start error, got %v", err)
	}
	if !first.stopped {
		t.Error("expected already started component to be stopped")
	}
}

func TestRunReturnsOnContextCancel(t *testing.T) {
	app, _ := NewApp(newTestConfig("sttproxy"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestReadyCheck(t *testing.T) {
	app, _ := NewApp(newTestConfig("sttproxy"))
	_ = app.RegisterComponent(&mockComponent{name: "server", health: component.Health{Name: "server", Status: component.StatusHealthy}})
	if err := app.ReadyCheck(context.Background()); err != nil {
		t.Fatalf("expected ready, got %v", err)
	}

	_ = app.RegisterComponent(&mockComponent{name: "transcription", health: component.Health{
		Name: "transcription", Status: component.StatusDegraded, Message: "GMS_API_KEY is not set",
	}})
	err := app.ReadyCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "transcription=degraded(GMS_API_KEY is not set)") {
		t.Errorf("unexpected ready check error %v", err)
	}
}

func TestRunHooksStopsAtFirstError(t *testing.T) {
	calls := 0
	err := runHooks(context.Background(), []Hook{
		func(context.Context) error { calls++; return errors.New("x") },
		func(context.Context) error { calls++; return nil },
	})
	if err == nil || calls != 1 {
		t.Errorf("expected first error to stop hooks, err=%v calls=%d", err, calls)
	}
}
