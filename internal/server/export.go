package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
)

// PreviewInvoice renders the variant's HTML preview. Rendering also registers
// the layout as the variant's export target.
func (s *Server) PreviewInvoice(c *gin.Context) {
	variant, err := render.ParseVariant(c.Param("variant"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	inv, err := s.invoiceSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	layout := render.BuildLayout(inv, variant, s.cfg.Seed.ProprietorName)
	s.registry.Put(layout)

	html, err := s.renderer.RenderHTML(layout)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportInvoice runs the export pipeline and streams the PDF as a download.
func (s *Server) ExportInvoice(c *gin.Context) {
	variant, err := render.ParseVariant(c.Param("variant"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	artifact, err := s.exportSvc.Export(c.Request.Context(), variant)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(artifact.PDF)))
	c.Data(http.StatusOK, "application/pdf", artifact.PDF)
}

// ListNotifications exposes the recent export outcomes for the UI shell.
func (s *Server) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.feed.Recent()})
}
