package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ReviewData is the typed view of the review content accumulated by a
// review task. It becomes the permanent report on publish.
type ReviewData struct {
	UserID         string   `mapstructure:"userId" json:"userId"`
	Summary        string   `mapstructure:"summary" json:"summary"`
	Questions      []string `mapstructure:"questions" json:"questions"`
	Report         string   `mapstructure:"report" json:"report"`
	Verification   string   `mapstructure:"verification" json:"verification"`
	Sources        []string `mapstructure:"sources" json:"sources"`
	Classification string   `mapstructure:"classification" json:"classification"`
}

// ClaimReview references the claim and personality a published review is
// about.
type ClaimReview struct {
	Personality string `mapstructure:"personality" json:"personality"`
	Claim       string `mapstructure:"claim" json:"claim"`
	UserID      string `mapstructure:"userId" json:"userId"`
}

// ReviewDataFrom decodes the reviewData entry of a context.
// Returns ErrMalformedPayload if the entry is absent or not decodable.
func ReviewDataFrom(c Context) (ReviewData, error) {
	var data ReviewData
	raw, ok := c[KeyReviewData]
	if !ok {
		return data, fmt.Errorf("%w: missing %q", ErrMalformedPayload, KeyReviewData)
	}
	if err := mapstructure.Decode(raw, &data); err != nil {
		return data, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return data, nil
}

// ClaimReviewFrom decodes the claimReview entry of a context.
// Returns ErrMalformedPayload if the entry is absent or not decodable.
func ClaimReviewFrom(c Context) (ClaimReview, error) {
	var review ClaimReview
	raw, ok := c[KeyClaimReview]
	if !ok {
		return review, fmt.Errorf("%w: missing %q", ErrMalformedPayload, KeyClaimReview)
	}
	if err := mapstructure.Decode(raw, &review); err != nil {
		return review, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return review, nil
}
