package machine

import (
	"fmt"

	"github.com/factlane/factlane/pkg/domain"
)

// SaveContext merges the event's partial payload into the instance context.
// It is attached to every legal transition of both machines so no client
// contribution is lost between states.
func SaveContext(ctx domain.Context, ev domain.Event) (domain.Context, error) {
	if len(ev.Payload) == 0 {
		return ctx, nil
	}
	return ctx.Merge(ev.Payload), nil
}

// StartSpeech initializes the context for a speech claim.
func StartSpeech(ctx domain.Context, ev domain.Event) (domain.Context, error) {
	next := ctx.Merge(ev.Payload)
	next[domain.KeyContentModel] = domain.ContentModelSpeech
	return next, nil
}

// StartImage initializes the context for an image claim.
func StartImage(ctx domain.Context, ev domain.Event) (domain.Context, error) {
	next := ctx.Merge(ev.Payload)
	next[domain.KeyContentModel] = domain.ContentModelImage
	return next, nil
}

// RequirePublishPayload verifies that the merged context carries decodable
// reviewData and claimReview entries. Running it after SaveContext on the
// PUBLISH transition aborts the transition before any persistence write when
// the payload is malformed.
func RequirePublishPayload(ctx domain.Context, _ domain.Event) (domain.Context, error) {
	if _, err := domain.ReviewDataFrom(ctx); err != nil {
		return nil, err
	}
	if _, err := domain.ClaimReviewFrom(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// RequireContentModel verifies that the claim-creation context knows whether
// it is a speech or image claim before the final persist transition.
func RequireContentModel(ctx domain.Context, _ domain.Event) (domain.Context, error) {
	model, _ := ctx[domain.KeyContentModel].(string)
	switch model {
	case domain.ContentModelSpeech, domain.ContentModelImage:
		return ctx, nil
	default:
		return nil, fmt.Errorf("%w: missing or unknown %q", domain.ErrMalformedPayload, domain.KeyContentModel)
	}
}
