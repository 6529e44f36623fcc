package domain_test

import (
	"testing"

	"github.com/factlane/factlane/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestContext_Merge(t *testing.T) {
	t.Run("Adds New Keys", func(t *testing.T) {
		ctx := domain.Context{"reviewerId": "u1"}
		next := ctx.Merge(map[string]any{"summary": "draft text"})

		assert.Equal(t, "u1", next["reviewerId"])
		assert.Equal(t, "draft text", next["summary"])
	})

	t.Run("Keeps Earlier Keys", func(t *testing.T) {
		ctx := domain.Context{"reviewerId": "u1", "summary": "draft"}
		next := ctx.Merge(map[string]any{"classification": "false"})

		for k := range ctx {
			assert.Contains(t, next, k, "merge must not drop key %q", k)
		}
	})

	t.Run("Overwrites On Collision", func(t *testing.T) {
		ctx := domain.Context{"summary": "v1"}
		next := ctx.Merge(map[string]any{"summary": "v2"})

		assert.Equal(t, "v2", next["summary"])
	})

	t.Run("Does Not Mutate Receiver", func(t *testing.T) {
		ctx := domain.Context{"reviewerId": "u1"}
		_ = ctx.Merge(map[string]any{"reviewerId": "u2", "extra": true})

		assert.Equal(t, "u1", ctx["reviewerId"])
		assert.NotContains(t, ctx, "extra")
	})

	t.Run("Merges Nested Maps One Level", func(t *testing.T) {
		ctx := domain.Context{
			"reviewData": map[string]any{"summary": "draft", "userId": "u1"},
		}
		next := ctx.Merge(map[string]any{
			"reviewData": map[string]any{"classification": "false"},
		})

		data, ok := next["reviewData"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "draft", data["summary"])
		assert.Equal(t, "u1", data["userId"])
		assert.Equal(t, "false", data["classification"])
	})

	t.Run("Nil Payload", func(t *testing.T) {
		ctx := domain.Context{"reviewerId": "u1"}
		next := ctx.Merge(nil)

		assert.Equal(t, domain.Context{"reviewerId": "u1"}, next)
	})
}

func TestContext_Clone(t *testing.T) {
	ctx := domain.Context{
		"reviewerId": "u1",
		"reviewData": map[string]any{"summary": "draft"},
	}
	clone := ctx.Clone()

	clone["reviewerId"] = "other"
	clone["reviewData"].(map[string]any)["summary"] = "changed"

	assert.Equal(t, "u1", ctx["reviewerId"])
	assert.Equal(t, "draft", ctx["reviewData"].(map[string]any)["summary"])
}
