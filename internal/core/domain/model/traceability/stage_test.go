package traceability_test

import (
	"testing"

	"marketplace/internal/core/domain/model/traceability"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	for _, stage := range []traceability.Stage{
		traceability.Farm,
		traceability.Processing,
		traceability.Distribution,
		traceability.Retail,
	} {
		parsed, err := traceability.ParseStage(stage.String())

		require.NoError(t, err)
		assert.Equal(t, stage, parsed)
	}

	_, err := traceability.ParseStage("warehouse")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", traceability.Stage(12).String())
}

func TestParseVerificationStatus(t *testing.T) {
	testCases := []struct {
		input    string
		expected traceability.VerificationStatus
	}{
		{"", traceability.VerificationPending},
		{"pending", traceability.VerificationPending},
		{"verified", traceability.Verified},
		{"Rejected", traceability.Rejected},
	}

	for _, tc := range testCases {
		parsed, err := traceability.ParseVerificationStatus(tc.input)

		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, parsed)
	}

	_, err := traceability.ParseVerificationStatus("approved")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, traceability.UnknownVerification.Validate())
}
