package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Seed  domain.Invoice
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node

	// mu enforces the single-writer discipline: one complete field and
	// derived-value update at a time.
	mu      sync.Mutex
	invoice domain.Invoice
}

func New(p Params) domain.Service {
	svc := &Service{
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
	}
	svc.invoice = p.Seed.Clone()
	svc.recompute()
	return svc
}

func (s *Service) Get(ctx context.Context) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoice.Clone(), nil
}

func (s *Service) SetField(ctx context.Context, req domain.SetFieldRequest) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Field {
	case domain.FieldInvoiceNumber:
		s.invoice.InvoiceNumber = req.Value
	case domain.FieldDate:
		s.invoice.Date = req.Value
	case domain.FieldBusinessName:
		s.invoice.BusinessName = req.Value
	case domain.FieldCustomerName:
		s.invoice.CustomerName = req.Value
	case domain.FieldCustomerAddress:
		s.invoice.CustomerAddress = req.Value
	case domain.FieldOwnerAddress:
		s.invoice.OwnerAddress = req.Value
	case domain.FieldOwnerPhone:
		s.invoice.OwnerPhone = req.Value
	default:
		return domain.Invoice{}, domain.ErrInvalidField
	}

	return s.invoice.Clone(), nil
}

func (s *Service) AddItem(ctx context.Context) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.LineItem{
		ID:        s.genID.Generate().String(),
		Quantity:  1,
		UnitPrice: 0,
		Subtotal:  0,
	}
	s.invoice.Items = append(s.invoice.Items, item)
	s.recompute()

	s.log.Debug("line item added", zap.String("item_id", item.ID))
	return s.invoice.Clone(), nil
}

func (s *Service) UpdateItem(ctx context.Context, req domain.UpdateItemRequest) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findItem(req.ID)
	if idx < 0 {
		// Unknown ids are ignored, not errors.
		return s.invoice.Clone(), nil
	}

	item := &s.invoice.Items[idx]
	switch req.Field {
	case domain.ItemFieldDescription:
		item.Description = req.Value
	case domain.ItemFieldQuantity:
		item.Quantity = coerceNumber(req.Value)
	case domain.ItemFieldUnitPrice:
		item.UnitPrice = coerceNumber(req.Value)
	default:
		return domain.Invoice{}, domain.ErrInvalidItemField
	}
	s.recompute()

	return s.invoice.Clone(), nil
}

func (s *Service) RemoveItem(ctx context.Context, id string) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findItem(id)
	if idx < 0 {
		return s.invoice.Clone(), nil
	}

	s.invoice.Items = append(s.invoice.Items[:idx], s.invoice.Items[idx+1:]...)
	s.recompute()

	s.log.Debug("line item removed", zap.String("item_id", id))
	return s.invoice.Clone(), nil
}

// recompute re-establishes both derived-value invariants in one place:
// subtotal = quantity * unit price per item, total = sum of subtotals.
// Every mutating path calls it before releasing the lock.
func (s *Service) recompute() {
	total := 0.0
	for i := range s.invoice.Items {
		item := &s.invoice.Items[i]
		item.Subtotal = item.Quantity * item.UnitPrice
		total += item.Subtotal
	}
	s.invoice.Total = total
}

func (s *Service) findItem(id string) int {
	for i := range s.invoice.Items {
		if s.invoice.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// coerceNumber parses quantity/price input, treating anything unparsable as 0
// so derived values stay numeric. ParseFloat accepts "NaN" and "Inf" spellings,
// which would poison the totals, so those collapse to 0 as well.
func coerceNumber(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}
