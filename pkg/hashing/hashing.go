package hashing

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/xxh3"
)

// ContentHash returns the stable identifier for a piece of reviewed content:
// the xxh3-128 hex digest of the normalized text. The same sentence always
// maps to the same workflow instance, regardless of surrounding whitespace.
func ContentHash(text string) string {
	sum := xxh3.Hash128([]byte(Normalize(text))).Bytes()
	return hex.EncodeToString(sum[:])
}

// Normalize trims the text and collapses internal whitespace runs to single
// spaces, so invisible formatting differences do not fork workflow instances.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
