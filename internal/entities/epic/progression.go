package epic

// PendingDecision is a player choice surfaced by the orchestrator.
// The orchestrator never auto-selects; the caller closes the decision
// with ApplySelection before the character is considered fully advanced
// to the decision's level.
type PendingDecision struct {
	ID       string       `json:"id"`
	Level    int32        `json:"level"`
	Type     DecisionType `json:"type"`
	Options  []string     `json:"options"`
	Count    int32        `json:"count"`
	Resolved bool         `json:"resolved"`
	// Selections holds the caller's choices once the decision is closed
	Selections []string `json:"selections,omitempty"`
}

// SaveGains is one level's saving throw deltas
type SaveGains struct {
	Fortitude int32 `json:"fortitude"`
	Reflex    int32 `json:"reflex"`
	Will      int32 `json:"will"`
}

// ProgressionStep records one level's worth of deltas. Steps are created
// once per level during an advance call and are immutable after being
// appended to the character's log.
type ProgressionStep struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	Level       int32  `json:"level"`

	HPGain          int32     `json:"hp_gain"`
	SkillPointsGain int32     `json:"skill_points_gain"`
	AttackBonusGain int32     `json:"attack_bonus_gain"`
	SaveGains       SaveGains `json:"save_gains"`

	// Decisions surfaced at this level, by pending decision ID
	DecisionIDs []string `json:"decision_ids,omitempty"`

	// EligibleFeatIDs is the capability option set offered at this level,
	// ordered by the catalog's power-score heuristic.
	EligibleFeatIDs []string `json:"eligible_feat_ids,omitempty"`

	// AbilityIncreasesDue is how many ability increase decisions this
	// level surfaced (0 or 1, 2 at the level 40 exception).
	AbilityIncreasesDue int32 `json:"ability_increases_due,omitempty"`

	SpellSlotsGranted   int32    `json:"spell_slots_granted,omitempty"`
	RankChange          int32    `json:"rank_change,omitempty"`
	CosmicPowersGranted []string `json:"cosmic_powers_granted,omitempty"`
	MilestonesAchieved  []string `json:"milestones_achieved,omitempty"`

	RecordedAt int64 `json:"recorded_at"`
}
