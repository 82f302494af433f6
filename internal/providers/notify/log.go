package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogProvider writes export outcomes to the structured log.
type LogProvider struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *LogProvider {
	return &LogProvider{log: log.Named("notify")}
}

func (p *LogProvider) ExportStarted(ctx context.Context, artifact string) {
	p.log.Info("generating PDF", zap.String("artifact", artifact))
}

func (p *LogProvider) ExportSucceeded(ctx context.Context, artifact string) {
	p.log.Info("PDF saved", zap.String("artifact", artifact))
}

func (p *LogProvider) ExportFailed(ctx context.Context, artifact string) {
	p.log.Warn("PDF generation failed", zap.String("artifact", artifact))
}
