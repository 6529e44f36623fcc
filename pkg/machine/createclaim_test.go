package machine_test

import (
	"testing"

	"github.com/factlane/factlane/pkg/domain"
	"github.com/factlane/factlane/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClaim_ImagePathWithoutPersonality(t *testing.T) {
	claim := machine.CreateClaim()
	snap := claim.NewSnapshot()

	snap = send(t, claim, snap, domain.Event{Type: domain.EventStartImage})
	assert.Equal(t, domain.StateSetupImage, snap.Value)
	assert.Equal(t, domain.ContentModelImage, snap.Context[domain.KeyContentModel])

	// Explicit skip-personality path, image claims only.
	snap = send(t, claim, snap, domain.Event{Type: domain.EventNoPersonality})
	assert.Equal(t, domain.StatePersonalityAdded, snap.Value)

	snap = send(t, claim, snap, domain.Event{Type: domain.EventPersist})
	assert.Equal(t, domain.StatePersisted, snap.Value)
	assert.NotContains(t, snap.Context, domain.KeyPersonality, "no personality reference required on the image path")
}

func TestCreateClaim_SpeechPath(t *testing.T) {
	claim := machine.CreateClaim()
	snap := claim.NewSnapshot()

	snap = send(t, claim, snap, domain.Event{
		Type:    domain.EventStartSpeech,
		Payload: map[string]any{"title": "town hall speech"},
	})
	assert.Equal(t, domain.StateSetupSpeech, snap.Value)
	assert.Equal(t, domain.ContentModelSpeech, snap.Context[domain.KeyContentModel])

	// Personality search is multi-attempt: addPersonality accumulates data
	// without advancing the state.
	for _, name := range []string{"candidate one", "candidate two"} {
		snap = send(t, claim, snap, domain.Event{
			Type:    domain.EventAddPersonality,
			Payload: map[string]any{domain.KeyPersonality: name},
		})
		assert.Equal(t, domain.StateSetupSpeech, snap.Value)
		assert.Equal(t, name, snap.Context[domain.KeyPersonality])
	}

	// Only the explicit confirmation advances.
	snap = send(t, claim, snap, domain.Event{Type: domain.EventSavePersonality})
	assert.Equal(t, domain.StatePersonalityAdded, snap.Value)
	assert.Equal(t, "candidate two", snap.Context[domain.KeyPersonality])

	snap = send(t, claim, snap, domain.Event{Type: domain.EventPersist})
	assert.Equal(t, domain.StatePersisted, snap.Value)
}

func TestCreateClaim_NoPersonalityOnlyOnImagePath(t *testing.T) {
	claim := machine.CreateClaim()
	snap := domain.NewSnapshot(domain.StateSetupSpeech)
	snap.Context[domain.KeyContentModel] = domain.ContentModelSpeech

	next, res, err := claim.Send(snap, domain.Event{Type: domain.EventNoPersonality})
	require.NoError(t, err)
	assert.False(t, res.Handled)
	assert.Equal(t, domain.StateSetupSpeech, next.Value)
}

func TestCreateClaim_PersistRequiresContentModel(t *testing.T) {
	claim := machine.CreateClaim()
	// A snapshot that somehow reached personalityAdded without a content
	// model must not persist.
	snap := domain.NewSnapshot(domain.StatePersonalityAdded)

	next, res, err := claim.Send(snap, domain.Event{Type: domain.EventPersist})
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
	assert.False(t, res.Handled)
	assert.Equal(t, domain.StatePersonalityAdded, next.Value)
}

func TestCreateClaim_TerminalImmutability(t *testing.T) {
	claim := machine.CreateClaim()
	snap := domain.NewSnapshot(domain.StatePersisted)
	snap.Context[domain.KeyContentModel] = domain.ContentModelImage

	for _, et := range []domain.EventType{
		domain.EventStartSpeech,
		domain.EventStartImage,
		domain.EventAddPersonality,
		domain.EventSavePersonality,
		domain.EventNoPersonality,
		domain.EventPersist,
	} {
		next, res, err := claim.Send(snap, domain.Event{Type: et})
		require.NoError(t, err)
		assert.False(t, res.Handled)
		assert.Equal(t, domain.StatePersisted, next.Value)
	}
}
