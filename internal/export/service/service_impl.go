package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkvoice/inkvoice/internal/config"
	"github.com/inkvoice/inkvoice/internal/export/domain"
	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"github.com/inkvoice/inkvoice/internal/observability/metrics"
	"github.com/inkvoice/inkvoice/internal/providers/notify"
	"github.com/inkvoice/inkvoice/internal/providers/pdf"
	"github.com/inkvoice/inkvoice/internal/providers/raster"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg        config.Config
	Log        *zap.Logger
	InvoiceSvc invoicedomain.Service
	Registry   *render.Registry
	Rasterizer raster.Provider
	Assembler  pdf.Assembler
	Notifier   notify.Provider
	Metrics    *metrics.Metrics `optional:"true"`
}

type Service struct {
	cfg        config.Config
	log        *zap.Logger
	invoiceSvc invoicedomain.Service
	registry   *render.Registry
	rasterizer raster.Provider
	assembler  pdf.Assembler
	notifier   notify.Provider
	metrics    *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		cfg:        p.Cfg,
		log:        p.Log.Named("export.service"),
		invoiceSvc: p.InvoiceSvc,
		registry:   p.Registry,
		rasterizer: p.Rasterizer,
		assembler:  p.Assembler,
		notifier:   p.Notifier,
		metrics:    p.Metrics,
	}
}

// Export runs the pipeline to completion or failure. All failures are caught
// here: callers see either an artifact or one of the domain errors, and the
// in-memory invoice is never touched.
func (s *Service) Export(ctx context.Context, variant render.Variant) (artifact domain.Artifact, err error) {
	defer func() { s.metrics.ObserveExport(string(variant), err) }()

	filename := s.artifactName(ctx, variant)

	layout, ok := s.registry.Get(variant)
	if !ok {
		s.log.Warn("export requested before variant was rendered",
			zap.String("variant", string(variant)))
		s.notifier.ExportFailed(ctx, filename)
		return domain.Artifact{}, domain.ErrRenderTargetMissing
	}

	s.notifier.ExportStarted(ctx, filename)

	img, rasterErr := s.rasterizer.Rasterize(ctx, layout)
	if rasterErr != nil {
		return domain.Artifact{}, s.fail(ctx, filename, "rasterize", rasterErr)
	}

	doc, assembleErr := s.assembler.Assemble(ctx, img)
	if assembleErr != nil {
		return domain.Artifact{}, s.fail(ctx, filename, "assemble", assembleErr)
	}

	path, saveErr := s.save(filename, doc)
	if saveErr != nil {
		return domain.Artifact{}, s.fail(ctx, filename, "save", saveErr)
	}

	s.notifier.ExportSucceeded(ctx, filename)
	s.log.Info("export finished",
		zap.String("variant", string(variant)),
		zap.String("artifact", filename),
		zap.Int("bytes", len(doc)))

	return domain.Artifact{Filename: filename, Path: path, PDF: doc}, nil
}

// fail logs the underlying cause for diagnostics and surfaces the single
// generic failure outward.
func (s *Service) fail(ctx context.Context, filename, step string, cause error) error {
	s.log.Error("export failed",
		zap.String("artifact", filename),
		zap.String("step", step),
		zap.Error(cause))
	s.notifier.ExportFailed(ctx, filename)
	return domain.ErrExportFailed
}

// save writes the document under the export directory via a temp file and
// rename, so a failed export never leaves a partial artifact behind.
func (s *Service) save(filename string, doc []byte) (string, error) {
	if err := os.MkdirAll(s.cfg.ExportDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.cfg.ExportDir, filename)
	tmp, err := os.CreateTemp(s.cfg.ExportDir, filename+".*")
	if err != nil {
		return "", err
	}

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return path, nil
}

func (s *Service) artifactName(ctx context.Context, variant render.Variant) string {
	number := ""
	if inv, err := s.invoiceSvc.Get(ctx); err == nil {
		number = inv.InvoiceNumber
	}
	return fmt.Sprintf("invoice-%s-%s.pdf", number, variant)
}
