package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/traceability"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Restock(
	ctx context.Context,
	id kernel.UUID,
	quantity int,
	now time.Time,
) (*product.Product, error) {
	args := m.Called(ctx, id, quantity, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockTraceabilityRepository struct{ mock.Mock }

func (m *MockTraceabilityRepository) Append(ctx context.Context, r *traceability.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) TraceabilityRepository() ports.TraceabilityRepository {
	args := m.Called()
	return args.Get(0).(ports.TraceabilityRepository)
}

// TrackedAggregates accepts either a []any or a func() []any, the latter for
// aggregates captured while the handler runs.
func (m *MockUoW) TrackedAggregates() []any {
	args := m.Called()
	switch tracked := args.Get(0).(type) {
	case func() []any:
		return tracked()
	case []any:
		return tracked
	default:
		return nil
	}
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockTraceabilityUoWFactory struct{ mock.Mock }

func (m *MockTraceabilityUoWFactory) Create() commands.TraceabilityUoW {
	args := m.Called()
	return args.Get(0).(commands.TraceabilityUoW)
}

type MockJourneyInvalidator struct{ mock.Mock }

func (m *MockJourneyInvalidator) Invalidate(ctx context.Context, productID kernel.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}
