package component

import (
	"context"
	"errors"
	"testing"
)

type mockComponent struct {
	name       string
	startErr   error
	stopErr    error
	health     Health
	startOrder *[]string
	stopOrder  *[]string
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	if m.startOrder != nil {
		*m.startOrder = append(*m.startOrder, m.name)
	}
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	if m.stopOrder != nil {
		*m.stopOrder = append(*m.stopOrder, m.name)
	}
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) Health { return m.health }

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&mockComponent{name: "server"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&mockComponent{name: "server"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if r.Get("server") == nil {
		t.Error("expected registered component")
	}
	if r.Get("missing") != nil {
		t.Error("expected nil for unknown component")
	}
}

func TestStartStopOrder(t *testing.T) {
	var started, stopped []string
	r := NewRegistry()
	for _, name := range []string{"transcription", "server"} {
		_ = r.Register(&mockComponent{name: name, startOrder: &started, stopOrder: &stopped})
	}

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(started) != 2 || started[0] != "transcription" || started[1] != "server" {
		t.Errorf("unexpected start order %v", started)
	}
	if len(stopped) != 2 || stopped[0] != "server" || stopped[1] != "transcription" {
		t.Errorf("unexpected stop order %v", stopped)
	}
}

func TestStartAllErrorSkipsStopOfUnstarted(t *testing.T) {
	var stopped []string
	r := NewRegistry()
	_ = r.Register(&mockComponent{name: "a", stopOrder: &stopped})
	_ = r.Register(&mockComponent{name: "b", startErr: errors.New("boom"), stopOrder: &stopped})

	if err := r.StartAll(context.Background()); err == nil {
		t.Fatal("expected start error")
	}
	_ = r.StopAll(context.Background())
	if len(stopped) != 1 || stopped[0] != "a" {
		t.Errorf("expected only started component stopped, got %v", stopped)
	}
}

func TestStopAllJoinsErrors(t *testing.T) {
	stopErr := errors.New("stuck")
	r := NewRegistry()
	_ = r.Register(&mockComponent{name: "a", stopErr: stopErr})
	_ = r.StartAll(context.Background())

	err := r.StopAll(context.Background())
	if !errors.Is(err, stopErr) {
		t.Errorf("expected stop error in chain, got %v", err)
	}
}

func TestHealthAllAndOverall(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&mockComponent{name: "a", health: Health{Name: "a", Status: StatusHealthy}})
	_ = r.Register(&mockComponent{name: "b", health: Health{Name: "b", Status: StatusDegraded, Message: "no key"}})

	results := r.HealthAll(context.Background())
	if len(results) != 2 || results[1].Message != "no key" {
		t.Fatalf("unexpected health %v", results)
	}

	tests := []struct {
		in   []Health
		want HealthStatus
	}{
		{nil, StatusHealthy},
		{results, StatusDegraded},
		{append(results, Health{Status: StatusUnhealthy}), StatusUnhealthy},
	}
	for _, tc := range tests {
		if got := Overall(tc.in); got != tc.want {
			t.Errorf("Overall(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
