package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/factlane/factlane/pkg/domain"
	"github.com/factlane/factlane/pkg/ports"
	"github.com/google/uuid"
)

// Report is a permanent report record held by the in-memory publisher.
type Report struct {
	Ref  ports.ReportRef
	Hash string
	Data domain.ReviewData
}

// ClaimReviewRecord is a permanent claim-review record referencing a report.
type ClaimReviewRecord struct {
	Hash   string
	Report ports.ReportRef
	Review domain.ClaimReview
}

// Publisher implements ports.ReviewPublisher in memory. It records every
// created report and claim review, which makes it useful both as the default
// wiring for local runs and as a spy in tests.
type Publisher struct {
	mu      sync.Mutex
	reports map[string]Report
	reviews map[string]ClaimReviewRecord
}

// NewPublisher creates an empty in-memory publisher.
func NewPublisher() *Publisher {
	return &Publisher{
		reports: make(map[string]Report),
		reviews: make(map[string]ClaimReviewRecord),
	}
}

// CreateReport stores the review data under a fresh report ref.
// A second creation for the same hash replaces the first, which keeps a
// retried publish side effect safe.
func (p *Publisher) CreateReport(ctx context.Context, data domain.ReviewData, hash string) (ports.ReportRef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ref := ports.ReportRef(uuid.NewString())
	p.reports[hash] = Report{Ref: ref, Hash: hash, Data: data}
	return ref, nil
}

// CreateClaimReview stores the claim review referencing the report.
func (p *Publisher) CreateClaimReview(ctx context.Context, review domain.ClaimReview, report ports.ReportRef, hash string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reviews[hash] = ClaimReviewRecord{Hash: hash, Report: report, Review: review}
	return nil
}

// ReportByHash returns the report created for a hash, if any.
func (p *Publisher) ReportByHash(hash string) (Report, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.reports[hash]
	return r, ok
}

// ClaimReviewByHash returns the claim review created for a hash, if any.
func (p *Publisher) ClaimReviewByHash(hash string) (ClaimReviewRecord, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.reviews[hash]
	return r, ok
}

// ReportCount returns the number of created reports.
func (p *Publisher) ReportCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.reports)
}

// ClaimWriter implements ports.ClaimWriter in memory.
type ClaimWriter struct {
	mu     sync.Mutex
	claims map[string]domain.Context
}

// NewClaimWriter creates an empty in-memory claim writer.
func NewClaimWriter() *ClaimWriter {
	return &ClaimWriter{claims: make(map[string]domain.Context)}
}

// PersistClaim stores the claim context under a fresh claim ref.
func (w *ClaimWriter) PersistClaim(ctx context.Context, claim domain.Context, hash string) (ports.ClaimRef, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.claims[hash] = claim.Clone()
	return ports.ClaimRef(uuid.NewString()), nil
}

// ClaimByHash returns the persisted claim context for a hash, if any.
func (w *ClaimWriter) ClaimByHash(hash string) (domain.Context, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.claims[hash]
	return c, ok
}

// FailingPublisher implements ports.ReviewPublisher and fails every call.
// Used in tests for the non-transactional publish gap.
type FailingPublisher struct{}

// CreateReport always fails.
func (FailingPublisher) CreateReport(ctx context.Context, data domain.ReviewData, hash string) (ports.ReportRef, error) {
	return "", fmt.Errorf("report creation unavailable")
}

// CreateClaimReview always fails.
func (FailingPublisher) CreateClaimReview(ctx context.Context, review domain.ClaimReview, report ports.ReportRef, hash string) error {
	return fmt.Errorf("claim review creation unavailable")
}
