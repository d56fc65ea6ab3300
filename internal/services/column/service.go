package column

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// OrderKey is the view configuration key holding the column order
const OrderKey = "columnOrder"

// ConfigSlot is the host's persisted view configuration.
// The column order is its only durable state owned by the board.
type ConfigSlot interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value string) error
}

// Service defines column order operations
type Service interface {
	GetOrder(ctx context.Context) []string
	SetOrder(ctx context.Context, order []string) error
	ResetOrder(ctx context.Context) error
}

// service implements Service on top of a ConfigSlot
type service struct {
	slot ConfigSlot
}

// NewService creates a column order service backed by slot
func NewService(slot ConfigSlot) Service {
	return &service{slot: slot}
}

// GetOrder reads the stored order.
// Read failures and malformed values degrade to an empty order.
func (s *service) GetOrder(ctx context.Context) []string {
	if s.slot == nil {
		return []string{}
	}
	raw, err := s.slot.Get(ctx, OrderKey)
	if err != nil {
		slog.Warn("failed to read column order", "error", err)
		return []string{}
	}
	return ParseOrder(raw)
}

// SetOrder persists a new order
func (s *service) SetOrder(ctx context.Context, order []string) error {
	if s.slot == nil {
		return ErrNoConfigSlot
	}
	for _, name := range order {
		if strings.Contains(name, ",") {
			return fmt.Errorf("%w: %q", ErrNameHasComma, name)
		}
		if name == "" || strings.TrimSpace(name) != name {
			return fmt.Errorf("%w: %q", ErrNameNotStorable, name)
		}
	}
	if err := s.slot.Set(ctx, OrderKey, FormatOrder(order)); err != nil {
		return fmt.Errorf("failed to save column order: %w", err)
	}
	slog.Debug("column order saved", "columns", len(order))
	return nil
}

// ResetOrder clears the stored order so columns follow the grouping order
func (s *service) ResetOrder(ctx context.Context) error {
	return s.SetOrder(ctx, nil)
}
