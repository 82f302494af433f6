package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkvoice/inkvoice/internal/config"
	"github.com/inkvoice/inkvoice/internal/export"
	exportdomain "github.com/inkvoice/inkvoice/internal/export/domain"
	"github.com/inkvoice/inkvoice/internal/invoice"
	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
	obsmetrics "github.com/inkvoice/inkvoice/internal/observability/metrics"
	"github.com/inkvoice/inkvoice/internal/providers/notify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	obsmetrics.Module,
	fx.Provide(NewEngine),
	invoice.Module,
	export.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	invoiceSvc invoicedomain.Service
	exportSvc  exportdomain.Service
	renderer   render.Renderer
	registry   *render.Registry
	feed       *notify.FeedProvider
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	InvoiceSvc invoicedomain.Service
	ExportSvc  exportdomain.Service
	Renderer   render.Renderer
	Registry   *render.Registry
	Feed       *notify.FeedProvider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		invoiceSvc: p.InvoiceSvc,
		exportSvc:  p.ExportSvc,
		renderer:   p.Renderer,
		registry:   p.Registry,
		feed:       p.Feed,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Invoice --------
	api.GET("/invoice", s.GetInvoice)
	api.PATCH("/invoice", s.SetInvoiceField)

	// -------- Line items --------
	api.POST("/invoice/items", s.AddItem)
	api.PATCH("/invoice/items/:id", s.UpdateItem)
	api.DELETE("/invoice/items/:id", s.RemoveItem)

	// -------- Notifications --------
	api.GET("/notifications", s.ListNotifications)

	// -------- Preview & export --------
	s.engine.GET("/preview/:variant", s.PreviewInvoice)
	s.engine.GET("/export/:variant", s.ExportInvoice)
}
