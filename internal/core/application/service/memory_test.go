package service_test

import (
	"context"
	"sync"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// memoryStore keeps snapshots of orders in insertion order and applies the same version
// check as the database repository.
type memoryStore struct {
	mu     sync.Mutex
	ids    []kernel.UUID
	orders map[kernel.UUID]*order.Order
}

func newMemoryStore() *memoryStore {
	return &memoryStore{orders: make(map[kernel.UUID]*order.Order)}
}

func snapshot(o *order.Order, version int) *order.Order {
	cp, err := order.RestoreOrder(o.ID(), o.UserID(), o.Status(), o.CreatedAt(), o.CompletedAt(),
		o.DeliveryAddress(), o.Items(), version)
	if err != nil {
		panic(err)
	}
	return cp
}

func (s *memoryStore) Add(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, o.ID())
	s.orders[o.ID()] = snapshot(o, o.Version())
	return nil
}

func (s *memoryStore) Update(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[o.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	if stored.Version() != o.Version() {
		return errs.NewVersionIsInvalidErrorWithCause("order")
	}
	s.orders[o.ID()] = snapshot(o, o.Version()+1)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	delete(s.orders, o.ID())
	return nil
}

func (s *memoryStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return snapshot(stored, stored.Version()), nil
}

// GetForUpdate holds no lock; the tests run requests one at a time.
func (s *memoryStore) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.Get(ctx, id)
}

func (s *memoryStore) ListByUser(ctx context.Context, userID kernel.UserID) ([]*order.Order, error) {
	return s.ListByUserSince(ctx, userID, time.Time{})
}

func (s *memoryStore) ListByUserSince(_ context.Context, userID kernel.UserID, since time.Time) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*order.Order, 0)
	for _, id := range s.ids {
		stored, ok := s.orders[id]
		if !ok || stored.UserID() != userID || stored.CreatedAt().Before(since) {
			continue
		}
		result = append(result, snapshot(stored, stored.Version()))
	}
	return result, nil
}

type memoryUoW struct {
	store *memoryStore
}

func (memoryUoW) Begin(context.Context) error    { return nil }
func (memoryUoW) Commit(context.Context) error   { return nil }
func (memoryUoW) Rollback(context.Context) error { return nil }

func (u memoryUoW) OrderRepository() ports.OrderRepository { return u.store }

type memoryUoWFactory struct {
	store *memoryStore
}

func (f memoryUoWFactory) Create() commands.OrderUoW { return memoryUoW(f) }

type stubWeather struct {
	err error
}

func (w stubWeather) Describe(_ context.Context, city string) (string, error) {
	if w.err != nil {
		return "", w.err
	}
	return "Weather in " + city + ": 3.0°C, Overcast", nil
}

type stubPayments struct{}

func (stubPayments) ProcessPayment(_ context.Context, details string) (string, error) {
	if details == "" {
		return "", ports.ErrPaymentDeclined
	}
	return "tx-" + details, nil
}
