// Package notify is the outward notification sink for export outcomes.
package notify

import "context"

// Provider receives the three observable export outcomes. Implementations
// must not fail the export: delivery is best effort.
type Provider interface {
	ExportStarted(ctx context.Context, artifact string)
	ExportSucceeded(ctx context.Context, artifact string)
	ExportFailed(ctx context.Context, artifact string)
}

type NoOpProvider struct{}

func (p *NoOpProvider) ExportStarted(ctx context.Context, artifact string)   {}
func (p *NoOpProvider) ExportSucceeded(ctx context.Context, artifact string) {}
func (p *NoOpProvider) ExportFailed(ctx context.Context, artifact string)    {}

// Composite fans out to multiple sinks.
type Composite struct {
	providers []Provider
}

func NewComposite(providers ...Provider) *Composite {
	return &Composite{providers: providers}
}

func (c *Composite) ExportStarted(ctx context.Context, artifact string) {
	for _, p := range c.providers {
		p.ExportStarted(ctx, artifact)
	}
}

func (c *Composite) ExportSucceeded(ctx context.Context, artifact string) {
	for _, p := range c.providers {
		p.ExportSucceeded(ctx, artifact)
	}
}

func (c *Composite) ExportFailed(ctx context.Context, artifact string) {
	for _, p := range c.providers {
		p.ExportFailed(ctx, artifact)
	}
}
