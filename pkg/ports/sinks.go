package ports

import (
	"context"

	"github.com/factlane/factlane/pkg/domain"
)

// ReportRef identifies a permanent report created on publish.
type ReportRef string

// ClaimRef identifies a permanently persisted claim.
type ClaimRef string

// ReviewPublisher creates the permanent records of a published review.
// It is invoked exactly once per review task, on the reported → published
// transition. The snapshot write and these creations are not transactional
// with each other; implementations should tolerate a retried creation for a
// hash that already has a report.
type ReviewPublisher interface {
	// CreateReport persists the review content as a permanent report keyed
	// by the instance's content hash.
	CreateReport(ctx context.Context, data domain.ReviewData, hash string) (ReportRef, error)

	// CreateClaimReview creates the permanent claim review referencing the
	// report and the content hash.
	CreateClaimReview(ctx context.Context, review domain.ClaimReview, report ReportRef, hash string) error
}

// ClaimWriter performs the actual claim-creation write for the claim-creation
// machine's persist transition.
type ClaimWriter interface {
	PersistClaim(ctx context.Context, claim domain.Context, hash string) (ClaimRef, error)
}

// CaptchaValidator checks the captcha token staged on an event. It is
// consumed only at the HTTP boundary; the engine itself never sees tokens.
type CaptchaValidator interface {
	Validate(ctx context.Context, token string) (bool, error)
}
