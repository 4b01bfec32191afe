package orders

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// RepositoryPort abstracts order persistence for the service.
type RepositoryPort interface {
	Load(ctx context.Context) []Order
	Save(ctx context.Context, orders []Order) error
}

// Service owns order status transitions.
type Service struct {
	repo   RepositoryPort
	logger *slog.Logger

	mu sync.Mutex
}

// NewService builds an orders service.
func NewService(repo RepositoryPort, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns every order as persisted.
func (s *Service) List(ctx context.Context) []Order {
	return s.repo.Load(ctx)
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	for _, o := range s.repo.Load(ctx) {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

// UpdateStatus moves the order along its lifecycle. Illegal transitions are
// rejected and leave the order book untouched.
func (s *Service) UpdateStatus(ctx context.Context, id string, next Status) (Order, error) {
	if !next.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrUnknownStatus, next)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.Load(ctx)
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if !CanTransition(all[i].Status, next) {
			return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, all[i].Status, next)
		}
		all[i].Status = next
		if err := s.repo.Save(ctx, all); err != nil {
			return Order{}, fmt.Errorf("orders: save: %w", err)
		}
		s.logger.Info("order status updated", "id", id, "status", next)
		return all[i], nil
	}
	return Order{}, ErrNotFound
}
