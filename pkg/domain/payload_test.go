package domain_test

import (
	"testing"

	"github.com/factlane/factlane/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewDataFrom(t *testing.T) {
	t.Run("Decodes", func(t *testing.T) {
		ctx := domain.Context{
			domain.KeyReviewData: map[string]any{
				"userId":         "u1",
				"summary":        "the claim is false",
				"questions":      []string{"who said it?"},
				"report":         "full report",
				"verification":   "checked against records",
				"sources":        []string{"https://example.org"},
				"classification": "false",
			},
		}

		data, err := domain.ReviewDataFrom(ctx)
		require.NoError(t, err)
		assert.Equal(t, "u1", data.UserID)
		assert.Equal(t, "false", data.Classification)
		assert.Len(t, data.Sources, 1)
	})

	t.Run("Missing Entry", func(t *testing.T) {
		_, err := domain.ReviewDataFrom(domain.Context{})
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
	})

	t.Run("Wrong Shape", func(t *testing.T) {
		_, err := domain.ReviewDataFrom(domain.Context{
			domain.KeyReviewData: map[string]any{"sources": 42},
		})
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
	})
}

func TestClaimReviewFrom(t *testing.T) {
	t.Run("Decodes", func(t *testing.T) {
		ctx := domain.Context{
			domain.KeyClaimReview: map[string]any{
				"personality": "p1",
				"claim":       "c1",
				"userId":      "u1",
			},
		}

		review, err := domain.ClaimReviewFrom(ctx)
		require.NoError(t, err)
		assert.Equal(t, "p1", review.Personality)
		assert.Equal(t, "c1", review.Claim)
	})

	t.Run("Missing Entry", func(t *testing.T) {
		_, err := domain.ClaimReviewFrom(domain.Context{})
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
	})
}
