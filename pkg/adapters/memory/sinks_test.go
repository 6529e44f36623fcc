package memory_test

import (
	"context"
	"testing"

	"github.com/factlane/factlane/pkg/adapters/memory"
	"github.com/factlane/factlane/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher(t *testing.T) {
	pub := memory.NewPublisher()
	ctx := context.Background()

	data := domain.ReviewData{UserID: "u1", Summary: "summary", Classification: "false"}
	ref, err := pub.CreateReport(ctx, data, "hash-1")
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	review := domain.ClaimReview{Personality: "p1", Claim: "c1", UserID: "u1"}
	require.NoError(t, pub.CreateClaimReview(ctx, review, ref, "hash-1"))

	report, ok := pub.ReportByHash("hash-1")
	require.True(t, ok)
	assert.Equal(t, ref, report.Ref)
	assert.Equal(t, data, report.Data)

	record, ok := pub.ClaimReviewByHash("hash-1")
	require.True(t, ok)
	assert.Equal(t, ref, record.Report)
	assert.Equal(t, review, record.Review)

	// A retried creation replaces, it never duplicates.
	_, err = pub.CreateReport(ctx, data, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, 1, pub.ReportCount())
}

func TestClaimWriter(t *testing.T) {
	writer := memory.NewClaimWriter()
	ctx := context.Background()

	claim := domain.Context{
		domain.KeyContentModel: domain.ContentModelImage,
		"title":                "suspicious photo",
	}
	ref, err := writer.PersistClaim(ctx, claim, "hash-2")
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	stored, ok := writer.ClaimByHash("hash-2")
	require.True(t, ok)
	assert.Equal(t, claim, stored)

	// Stored claim is isolated from later caller mutation.
	claim["title"] = "changed"
	stored, _ = writer.ClaimByHash("hash-2")
	assert.Equal(t, "suspicious photo", stored["title"])
}
