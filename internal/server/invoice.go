package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
)

func (s *Server) GetInvoice(c *gin.Context) {
	inv, err := s.invoiceSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Server) SetInvoiceField(c *gin.Context) {
	var req invoicedomain.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}
	if strings.TrimSpace(req.Field) == "" {
		AbortWithError(c, newValidationError("field", "invalid_field", "field is required"))
		return
	}

	inv, err := s.invoiceSvc.SetField(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Server) AddItem(c *gin.Context) {
	inv, err := s.invoiceSvc.AddItem(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Server) UpdateItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	var req invoicedomain.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}
	req.ID = id

	inv, err := s.invoiceSvc.UpdateItem(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Server) RemoveItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	inv, err := s.invoiceSvc.RemoveItem(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inv})
}
