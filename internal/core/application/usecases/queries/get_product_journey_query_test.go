package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductJourneyQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetProductJourneyQuery(id.String())

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.ProductID())
}

func TestNewGetProductJourneyQuery_Malformed(t *testing.T) {
	query, err := queries.NewGetProductJourneyQuery("42")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, query.Validate(), queries.ErrGetProductJourneyQueryIsNotConstructed)
}

func TestGetLedgerDiscrepanciesQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetLedgerDiscrepanciesQuery().Validate())

	var query queries.GetLedgerDiscrepanciesQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetLedgerDiscrepanciesQueryIsNotConstructed)
}
