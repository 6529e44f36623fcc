package factlane_test

import (
	"context"
	"fmt"

	"github.com/factlane/factlane"
	"github.com/factlane/factlane/pkg/domain"
)

// A review task is driven entirely by events against its content hash.
func Example() {
	e := factlane.New()
	hash := factlane.Hash("The moon is made of cheese.")

	snap, _ := e.DispatchReview(context.Background(), hash, domain.Event{
		Type:    domain.EventAssignUser,
		Payload: map[string]any{domain.KeyReviewerID: "reviewer-1"},
	})
	fmt.Println(snap.Value)
	// Output: assigned.undraft
}
