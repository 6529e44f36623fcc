package machine

import "github.com/factlane/factlane/pkg/domain"

// CreateClaim builds the claim-creation machine. Personality attachment is a
// multi-attempt interaction: addPersonality self-loops saving context, and
// only an explicit savePersonality (or noPersonality, image path only)
// advances to personalityAdded. The persist transition moves to the terminal
// persisted state; the actual claim write is the dispatcher's side effect.
func CreateClaim() *Definition {
	return &Definition{
		Name:    "createClaim",
		Initial: domain.StateNotStarted,
		Finals: map[domain.StateValue]bool{
			domain.StatePersisted: true,
		},
		Table: map[domain.StateValue]map[domain.EventType]Transition{
			domain.StateNotStarted: {
				domain.EventStartSpeech: {
					Target:  domain.StateSetupSpeech,
					Actions: []Action{StartSpeech},
				},
				domain.EventStartImage: {
					Target:  domain.StateSetupImage,
					Actions: []Action{StartImage},
				},
			},
			domain.StateSetupSpeech: {
				domain.EventAddPersonality: {
					// Self loop: accumulate data without advancing.
					Actions: []Action{SaveContext},
				},
				domain.EventSavePersonality: {
					Target: domain.StatePersonalityAdded,
				},
			},
			domain.StateSetupImage: {
				domain.EventAddPersonality: {
					Actions: []Action{SaveContext},
				},
				domain.EventNoPersonality: {
					Target:  domain.StatePersonalityAdded,
					Actions: []Action{SaveContext},
				},
				domain.EventSavePersonality: {
					Target: domain.StatePersonalityAdded,
				},
			},
			domain.StatePersonalityAdded: {
				domain.EventPersist: {
					Target:  domain.StatePersisted,
					Actions: []Action{SaveContext, RequireContentModel},
				},
			},
		},
	}
}
