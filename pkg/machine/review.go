package machine

import "github.com/factlane/factlane/pkg/domain"

// Full paths of the review-task substates.
var (
	assignedUndraft = domain.StateAssigned.Child(domain.SubstateUndraft)
	assignedDraft   = domain.StateAssigned.Child(domain.SubstateDraft)
	reportedUndraft = domain.StateReported.Child(domain.SubstateUndraft)
	reportedDraft   = domain.StateReported.Child(domain.SubstateDraft)
)

// ReviewTask builds the review-task machine: a claim review moves from
// unassigned through assigned and reported to the terminal published state.
// The assigned and reported states are compound, with undraft/draft substates
// tracking whether a draft has been saved at that stage.
func ReviewTask() *Definition {
	return &Definition{
		Name:    "reviewTask",
		Initial: domain.StateUnassigned,
		InitialSubstates: map[domain.StateValue]string{
			domain.StateAssigned: domain.SubstateUndraft,
			domain.StateReported: domain.SubstateUndraft,
		},
		Finals: map[domain.StateValue]bool{
			domain.StatePublished: true,
		},
		Table: map[domain.StateValue]map[domain.EventType]Transition{
			domain.StateUnassigned: {
				domain.EventAssignUser: {
					Target:  domain.StateAssigned,
					Actions: []Action{SaveContext},
				},
			},
			domain.StateAssigned: {
				// Compound level: fires from either substate.
				domain.EventFinishReport: {
					Target:  domain.StateReported,
					Actions: []Action{SaveContext},
				},
			},
			assignedUndraft: {
				domain.EventSaveDraft: {
					Target:  assignedDraft,
					Actions: []Action{SaveContext},
				},
			},
			assignedDraft: {
				domain.EventSaveDraft: {
					Target:  assignedDraft,
					Actions: []Action{SaveContext},
				},
			},
			domain.StateReported: {
				domain.EventPublish: {
					Target:  domain.StatePublished,
					Actions: []Action{SaveContext, RequirePublishPayload},
				},
			},
			reportedUndraft: {
				domain.EventSaveDraft: {
					Target:  reportedDraft,
					Actions: []Action{SaveContext},
				},
			},
			reportedDraft: {
				domain.EventSaveDraft: {
					Target:  reportedDraft,
					Actions: []Action{SaveContext},
				},
			},
		},
	}
}
