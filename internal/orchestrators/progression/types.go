package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/tbaillis/epic-api/internal/orchestrators/progression Service

import (
	"context"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/rulebook/divine"
)

// Service defines the interface for epic progression operations
type Service interface {
	// Level advancement
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)
	ApplySelection(ctx context.Context, input *ApplySelectionInput) (*ApplySelectionOutput, error)
	ListEligibleFeats(ctx context.Context, input *ListEligibleFeatsInput) (*ListEligibleFeatsOutput, error)

	// Divine rank transitions
	Ascend(ctx context.Context, input *AscendInput) (*AscendOutput, error)
	AdvanceRank(ctx context.Context, input *AdvanceRankInput) (*AdvanceRankOutput, error)

	// History
	GetTrace(ctx context.Context, input *GetTraceInput) (*GetTraceOutput, error)
}

// AdvanceInput defines the request for advancing a character
type AdvanceInput struct {
	CharacterID string
	TargetLevel int32
}

// AdvanceOutput defines the response for advancing a character
type AdvanceOutput struct {
	Snapshot *epic.CharacterSnapshot
	// Steps is the trace of this call, one entry per level advanced
	Steps []*epic.ProgressionStep
	// NewMilestones are the milestone ids achieved during this call
	NewMilestones []string
	// OpenDecisions are the player choices that must be closed via
	// ApplySelection before the character is fully advanced
	OpenDecisions []epic.PendingDecision
}

// ApplySelectionInput defines the request for closing a pending decision
type ApplySelectionInput struct {
	CharacterID string
	DecisionID  string
	// Selections are capability ids for feat decisions, ability names
	// for ability increase decisions
	Selections []string
}

// ApplySelectionOutput defines the response for closing a pending decision
type ApplySelectionOutput struct {
	Snapshot *epic.CharacterSnapshot
	Decision epic.PendingDecision
}

// ListEligibleFeatsInput defines the request for listing eligible capabilities
type ListEligibleFeatsInput struct {
	CharacterID string
	// AtLevel defaults to the character's current level
	AtLevel int32
}

// ListEligibleFeatsOutput defines the response for listing eligible capabilities
type ListEligibleFeatsOutput struct {
	// FeatIDs are ordered by the catalog's power-score heuristic
	FeatIDs []string
}

// AscendInput defines the request for the rank 0 to 1 transition
type AscendInput struct {
	CharacterID string
	// Metrics are the externally-tracked worship and quest inputs
	Metrics divine.AscensionMetrics
}

// AscendOutput defines the response for ascension
type AscendOutput struct {
	Snapshot      *epic.CharacterSnapshot
	NewMilestones []string
}

// AdvanceRankInput defines the request for advancing divine rank
type AdvanceRankInput struct {
	CharacterID string
	ToRank      int32
}

// AdvanceRankOutput defines the response for advancing divine rank
type AdvanceRankOutput struct {
	Snapshot      *epic.CharacterSnapshot
	NewMilestones []string
}

// GetTraceInput defines the request for reading the progression trace
type GetTraceInput struct {
	CharacterID string
}

// GetTraceOutput defines the response for reading the progression trace
type GetTraceOutput struct {
	Steps []*epic.ProgressionStep
}
