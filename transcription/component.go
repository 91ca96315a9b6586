package transcription

import (
	"context"

	"github.com/kbukum/sttproxy/component"
)

// Component reports provider readiness to the component registry. It owns
// no resources.
type Component struct {
	provider Provider
}

// NewComponent wraps p as a lifecycle component.
func NewComponent(p Provider) *Component {
	return &Component{provider: p}
}

// Name returns the component name.
func (c *Component) Name() string { return "transcription:" + c.provider.Name() }

func (c *Component) Start(context.Context) error { return nil }

func (c *Component) Stop(context.Context) error { return nil }

// Health is degraded while the provider is not configured. The upstream is
// never contacted.
func (c *Component) Health(ctx context.Context) component.Health {
	h := component.Health{Name: c.Name(), Status: component.StatusHealthy}
	if !c.provider.IsAvailable(ctx) {
		h.Status = component.StatusDegraded
		h.Message = "provider is not configured; requests will fail"
	}
	return h
}
