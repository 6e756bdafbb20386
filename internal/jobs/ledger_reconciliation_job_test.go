package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerDiscrepanciesHandler struct {
	mock.Mock
}

func (m *MockLedgerDiscrepanciesHandler) Handle(
	ctx context.Context,
	query queries.GetLedgerDiscrepanciesQuery,
) ([]queries.GetLedgerDiscrepanciesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetLedgerDiscrepanciesQueryResponse), args.Error(1)
}

// syncBuffer lets the cron goroutine and the test share log output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) lines() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err == nil {
			out = append(out, entry)
		}
	}
	return out
}

func TestLedgerReconciliationJob_Run(t *testing.T) {
	t.Run("logs_each_discrepancy", func(t *testing.T) {
		// Given
		handler := &MockLedgerDiscrepanciesHandler{}
		logs := &syncBuffer{}
		logger := slog.New(slog.NewJSONHandler(logs, nil))

		first := queries.GetLedgerDiscrepanciesQueryResponse{
			OrderID: kernel.NewUUID(), ProductID: kernel.NewUUID(), Status: order.Shipped,
		}
		second := queries.GetLedgerDiscrepanciesQueryResponse{
			OrderID: kernel.NewUUID(), ProductID: kernel.NewUUID(), Status: order.Cancelled,
		}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetLedgerDiscrepanciesQuery) bool {
			return q.Validate() == nil
		})).Return([]queries.GetLedgerDiscrepanciesQueryResponse{first, second}, nil).Once()

		job := jobs.NewLedgerReconciliationJob(handler, "", logger)

		// When
		found, err := job.Run(context.Background())

		// Then
		require.NoError(t, err)
		assert.Equal(t, 2, found)

		entries := logs.lines()
		require.Len(t, entries, 2)
		assert.Equal(t, "WARN", entries[0]["level"])
		assert.Equal(t, first.OrderID.String(), entries[0]["order_id"])
		assert.Equal(t, first.ProductID.String(), entries[0]["product_id"])
		assert.Equal(t, "shipped", entries[0]["status"])
		assert.Equal(t, "ledger_reconciliation_job", entries[0]["component"])
		assert.Equal(t, "cancelled", entries[1]["status"])
		handler.AssertExpectations(t)
	})

	t.Run("nothing_to_report", func(t *testing.T) {
		handler := &MockLedgerDiscrepanciesHandler{}
		logs := &syncBuffer{}
		handler.On("Handle", mock.Anything, mock.Anything).
			Return([]queries.GetLedgerDiscrepanciesQueryResponse{}, nil).Once()

		found, err := jobs.NewLedgerReconciliationJob(handler, "", slog.New(slog.NewJSONHandler(logs, nil))).
			Run(context.Background())

		require.NoError(t, err)
		assert.Zero(t, found)
		assert.Empty(t, logs.lines())
	})

	t.Run("query_error_is_returned", func(t *testing.T) {
		handler := &MockLedgerDiscrepanciesHandler{}
		expected := errors.New("db down")
		handler.On("Handle", mock.Anything, mock.Anything).Return(nil, expected).Once()

		_, err := jobs.NewLedgerReconciliationJob(handler, "", slog.New(slog.DiscardHandler)).
			Run(context.Background())

		require.ErrorIs(t, err, expected)
	})
}

func TestLedgerReconciliationJob_Start(t *testing.T) {
	t.Run("invalid_schedule", func(t *testing.T) {
		job := jobs.NewLedgerReconciliationJob(&MockLedgerDiscrepanciesHandler{}, "every minute", slog.New(slog.DiscardHandler))

		require.Error(t, job.Start())
	})

	t.Run("runs_on_schedule", func(t *testing.T) {
		handler := &MockLedgerDiscrepanciesHandler{}
		ran := make(chan struct{}, 8)
		handler.On("Handle", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { ran <- struct{}{} }).
			Return([]queries.GetLedgerDiscrepanciesQueryResponse{}, nil)

		job := jobs.NewLedgerReconciliationJob(handler, "* * * * * *", slog.New(slog.DiscardHandler))
		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			t.Fatal("reconciliation did not run")
		}
	})
}

func TestJobManager(t *testing.T) {
	t.Run("start_and_stop", func(t *testing.T) {
		handler := &MockLedgerDiscrepanciesHandler{}
		handler.On("Handle", mock.Anything, mock.Anything).
			Return([]queries.GetLedgerDiscrepanciesQueryResponse{}, nil).Maybe()
		manager := jobs.NewJobManager(handler, "", slog.New(slog.DiscardHandler))

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("invalid_schedule_fails", func(t *testing.T) {
		manager := jobs.NewJobManager(&MockLedgerDiscrepanciesHandler{}, "bogus", slog.New(slog.DiscardHandler))

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger reconciliation job")
	})
}
