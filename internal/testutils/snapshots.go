package testutils

import (
	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/orchestrators/progression"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Karsus the Unbound"

// NewEpicFighter returns a level 21 fighter snapshot with enough
// experience for its level and no open decisions
func NewEpicFighter(id string) *epic.CharacterSnapshot {
	return &epic.CharacterSnapshot{
		ID:               id,
		Name:             TestCharacterName,
		PlayerID:         "player-test-001",
		ClassID:          "fighter",
		Level:            21,
		ExperiencePoints: progression.RequiredExperience(21),
		AbilityScores: epic.AbilityScores{
			Strength:     24,
			Dexterity:    14,
			Constitution: 18,
			Intelligence: 10,
			Wisdom:       12,
			Charisma:     10,
		},
		HitPoints:   210,
		SkillPoints: 48,
		AttackBonus: 20,
		SaveBonuses: epic.SaveBonuses{Fortitude: 12, Reflex: 6, Will: 6},
		Feats:       []string{"power-attack", "cleave"},
	}
}

// NewEpicWizard returns a level 21 wizard snapshot able to develop
// epic spells
func NewEpicWizard(id string) *epic.CharacterSnapshot {
	return &epic.CharacterSnapshot{
		ID:               id,
		Name:             "Ioulaum",
		PlayerID:         "player-test-002",
		ClassID:          "wizard",
		Level:            21,
		ExperiencePoints: progression.RequiredExperience(21),
		AbilityScores: epic.AbilityScores{
			Strength:     8,
			Dexterity:    14,
			Constitution: 14,
			Intelligence: 30,
			Wisdom:       16,
			Charisma:     12,
		},
		HitPoints:       84,
		SkillPoints:     120,
		AttackBonus:     10,
		SaveBonuses:     epic.SaveBonuses{Fortitude: 7, Reflex: 7, Will: 12},
		Feats:           []string{"spell-focus", "empower-spell"},
		EpicFeats:       []string{feats.FeatEpicSpellcasting},
		SpellcraftRanks: 24,
		CastingAbility:  epic.AbilityIntelligence,
		EpicSpellSlots:  &epic.SpellSlots{Total: 2, Remaining: 2},
	}
}

// NewDemigod returns a rank 1 divine snapshot at the ascension level
func NewDemigod(id string) *epic.CharacterSnapshot {
	snapshot := NewEpicFighter(id)
	snapshot.Name = "Valkur the Risen"
	snapshot.Level = 50
	snapshot.ExperiencePoints = progression.RequiredExperience(50)
	snapshot.AbilityScores.Charisma = 32
	snapshot.AbilityScores.Wisdom = 26
	snapshot.EpicFeats = []string{feats.FeatEpicLeadership, feats.FeatLegendaryCommander}
	snapshot.DivineRank = 1
	snapshot.Immunities = []string{"disease"}
	snapshot.CosmicPowers = []string{"alter-size", "divine-aura"}
	return snapshot
}
