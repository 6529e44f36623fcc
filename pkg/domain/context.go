package domain

// Context holds the data a workflow instance accumulates across transitions:
// reviewer id, draft summary, sources, classification, personality reference,
// content type. It is merge-only within a lifecycle; transitions add or
// deliberately overwrite keys, they never silently drop them.
type Context map[string]any

// Well-known context keys.
const (
	KeyReviewData   = "reviewData"
	KeyClaimReview  = "claimReview"
	KeyReviewerID   = "reviewerId"
	KeyContentModel = "contentModel"
	KeyPersonality  = "personality"
)

// Content models for the claim-creation machine.
const (
	ContentModelSpeech = "speech"
	ContentModelImage  = "image"
)

// Merge returns a new Context containing all keys of c overlaid with the
// entries of patch. Neither input is mutated. Nested maps are merged one
// level deep so partial reviewData updates do not clobber earlier fields.
func (c Context) Merge(patch map[string]any) Context {
	out := c.Clone()
	for k, v := range patch {
		patchMap, ok := v.(map[string]any)
		if !ok {
			out[k] = v
			continue
		}
		existing, ok := out[k].(map[string]any)
		if !ok {
			out[k] = cloneMap(patchMap)
			continue
		}
		merged := cloneMap(existing)
		for pk, pv := range patchMap {
			merged[pk] = pv
		}
		out[k] = merged
	}
	return out
}

// Clone returns a shallow copy of the context with nested maps copied one
// level deep. Callers get isolation from later mutations of the original.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		if m, ok := v.(map[string]any); ok {
			out[k] = cloneMap(m)
			continue
		}
		out[k] = v
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
