package domain

import (
	"context"
	"errors"
)

type SetFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type UpdateItemRequest struct {
	ID    string `json:"-"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// Service owns the single in-memory invoice. Every mutation is atomic and
// re-establishes the derived-value invariants before returning.
type Service interface {
	Get(context.Context) (Invoice, error)
	SetField(context.Context, SetFieldRequest) (Invoice, error)
	AddItem(context.Context) (Invoice, error)
	UpdateItem(context.Context, UpdateItemRequest) (Invoice, error)
	RemoveItem(ctx context.Context, id string) (Invoice, error)
}

var (
	ErrInvalidField     = errors.New("invalid_field")
	ErrInvalidItemField = errors.New("invalid_item_field")
)
