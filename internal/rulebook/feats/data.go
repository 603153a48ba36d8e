package feats

import "github.com/tbaillis/epic-api/internal/entities/epic"

// Well-known capability ids referenced elsewhere in the module
const (
	FeatEpicLeadership        = "epic-leadership"
	FeatLegendaryCommander    = "legendary-commander"
	FeatEpicSpellcasting      = "epic-spellcasting"
	FeatImprovedSpellCapacity = "improved-spell-capacity"
)

// DefaultCatalog returns the standard capability content. The ordinary
// (non-epic) entries exist so epic prerequisite chains resolve against
// real descriptors.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(defaultDescriptors())
}

// MustDefaultCatalog is DefaultCatalog for wiring paths where the static
// content is known valid.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func defaultDescriptors() []Descriptor {
	return []Descriptor{
		// Ordinary capabilities used as prerequisite anchors
		{
			ID: "power-attack", Name: "Power Attack", Category: CategoryGeneral,
			Prerequisites: []Predicate{MinAbility(epic.AbilityStrength, 13)},
			Effect:        Effect{Description: "Trade attack bonus for damage"},
		},
		{
			ID: "cleave", Name: "Cleave", Category: CategoryGeneral,
			Prerequisites: []Predicate{HasFeat("power-attack")},
			Effect:        Effect{Description: "Extra melee attack after a drop"},
		},
		{
			ID: "great-cleave", Name: "Great Cleave", Category: CategoryGeneral,
			Prerequisites: []Predicate{HasFeat("cleave"), MinLevel(4)},
			Effect:        Effect{Description: "No limit on cleave attacks per round"},
		},
		{
			ID: "improved-critical", Name: "Improved Critical", Category: CategoryGeneral,
			Prerequisites: []Predicate{MinLevel(8)},
			Effect:        Effect{Description: "Doubled threat range with one weapon"},
		},
		{
			ID: "weapon-focus", Name: "Weapon Focus", Category: CategoryGeneral,
			Effect: Effect{BonusTarget: "attack", Bonus: 1, Description: "+1 attack with one weapon"},
		},
		{
			ID: "dodge", Name: "Dodge", Category: CategoryGeneral,
			Prerequisites: []Predicate{MinAbility(epic.AbilityDexterity, 13)},
			Effect:        Effect{BonusTarget: "armor_class", Bonus: 1, Description: "+1 dodge bonus"},
		},
		{
			ID: "leadership", Name: "Leadership", Category: CategoryGeneral,
			Prerequisites: []Predicate{MinLevel(6)},
			Effect:        Effect{Unlock: "cohort", Description: "Attract a cohort and followers"},
		},
		{
			ID: "iron-will", Name: "Iron Will", Category: CategoryGeneral,
			Effect: Effect{BonusTarget: "will_save", Bonus: 2, Description: "+2 on Will saves"},
		},
		{
			ID: "great-fortitude", Name: "Great Fortitude", Category: CategoryGeneral,
			Effect: Effect{BonusTarget: "fortitude_save", Bonus: 2, Description: "+2 on Fortitude saves"},
		},
		{
			ID: "lightning-reflexes", Name: "Lightning Reflexes", Category: CategoryGeneral,
			Effect: Effect{BonusTarget: "reflex_save", Bonus: 2, Description: "+2 on Reflex saves"},
		},
		{
			ID: "improved-initiative", Name: "Improved Initiative", Category: CategoryGeneral,
			Effect: Effect{BonusTarget: "initiative", Bonus: 4, Description: "+4 on initiative"},
		},

		// Epic ability boosts (repeatable)
		{
			ID: "great-strength", Name: "Great Strength", Category: CategoryEpicAbility, Repeatable: true,
			Effect: Effect{BonusTarget: "strength", Bonus: 1, Description: "+1 Strength, permanent"},
		},
		{
			ID: "great-dexterity", Name: "Great Dexterity", Category: CategoryEpicAbility, Repeatable: true,
			Effect: Effect{BonusTarget: "dexterity", Bonus: 1, Description: "+1 Dexterity, permanent"},
		},
		{
			ID: "great-constitution", Name: "Great Constitution", Category: CategoryEpicAbility, Repeatable: true,
			Effect: Effect{BonusTarget: "constitution", Bonus: 1, Description: "+1 Constitution, permanent"},
		},
		{
			ID: "great-intelligence", Name: "Great Intelligence", Category: CategoryEpicAbility, Repeatable: true,
			Effect: Effect{BonusTarget: "intelligence", Bonus: 1, Description: "+1 Intelligence, permanent"},
		},
		{
			ID: "great-wisdom", Name: "Great Wisdom", Category: CategoryEpicAbility, Repeatable: true,
			Effect: Effect{BonusTarget: "wisdom", Bonus: 1, Description: "+1 Wisdom, permanent"},
		},
		{
			ID: "great-charisma", Name: "Great Charisma", Category: CategoryEpicAbility, Repeatable: true,
			Effect: Effect{BonusTarget: "charisma", Bonus: 1, Description: "+1 Charisma, permanent"},
		},

		// Epic combat capabilities
		{
			ID: "armor-skin", Name: "Armor Skin", Category: CategoryEpic, Repeatable: true,
			Effect: Effect{BonusTarget: "armor_class", Bonus: 1, Description: "+1 natural armor"},
		},
		{
			ID: "epic-toughness", Name: "Epic Toughness", Category: CategoryEpic, Repeatable: true,
			Effect: Effect{BonusTarget: "hit_points", Bonus: 30, Description: "+30 hit points"},
		},
		{
			ID: "epic-prowess", Name: "Epic Prowess", Category: CategoryEpic, Repeatable: true,
			Effect: Effect{BonusTarget: "attack", Bonus: 1, Description: "+1 on all attacks"},
		},
		{
			ID: "epic-weapon-focus", Name: "Epic Weapon Focus", Category: CategoryEpic,
			Prerequisites: []Predicate{HasFeat("weapon-focus")},
			Effect:        Effect{BonusTarget: "attack", Bonus: 2, Description: "+2 attack with the focused weapon"},
		},
		{
			ID: "overwhelming-critical", Name: "Overwhelming Critical", Category: CategoryEpic,
			Prerequisites: []Predicate{
				MinAbility(epic.AbilityStrength, 23),
				HasFeat("cleave"), HasFeat("great-cleave"),
				HasFeat("improved-critical"), HasFeat("power-attack"),
			},
			Effect: Effect{BonusTarget: "damage", Bonus: 6, Description: "Extra damage on critical hits"},
		},
		{
			ID: "devastating-critical", Name: "Devastating Critical", Category: CategoryEpic,
			Prerequisites: []Predicate{
				MinAbility(epic.AbilityStrength, 25),
				HasFeat("cleave"), HasFeat("great-cleave"),
				HasFeat("improved-critical"), HasFeat("power-attack"),
				HasEpicFeat("overwhelming-critical"),
			},
			Effect: Effect{Unlock: "death_on_critical", Description: "Critical hits can kill outright"},
		},
		{
			ID: "blinding-speed", Name: "Blinding Speed", Category: CategoryEpic,
			Prerequisites: []Predicate{MinAbility(epic.AbilityDexterity, 25)},
			Effect:        Effect{Unlock: "haste", Description: "Act as if hasted, 5 rounds per day"},
		},
		{
			ID: "superior-initiative", Name: "Superior Initiative", Category: CategoryEpic,
			Prerequisites: []Predicate{HasFeat("improved-initiative")},
			Effect:        Effect{BonusTarget: "initiative", Bonus: 8, Description: "+8 on initiative"},
		},
		{
			ID: "perfect-health", Name: "Perfect Health", Category: CategoryEpic,
			Prerequisites: []Predicate{MinAbility(epic.AbilityConstitution, 25), HasFeat("great-fortitude")},
			Effect:        Effect{Unlock: "disease_immunity", Description: "Immune to disease and poison"},
		},
		{
			ID: "fast-healing", Name: "Fast Healing", Category: CategoryEpic, Repeatable: true,
			Prerequisites: []Predicate{MinAbility(epic.AbilityConstitution, 25)},
			Effect:        Effect{BonusTarget: "regeneration", Bonus: 3, Description: "Regain 3 hit points per round"},
		},
		{
			ID: "energy-resistance", Name: "Energy Resistance", Category: CategoryEpic, Repeatable: true,
			Effect: Effect{BonusTarget: "energy_resistance", Bonus: 10, Description: "Resistance 10 to one energy type"},
		},
		{
			ID: "epic-will", Name: "Epic Will", Category: CategoryEpic,
			Prerequisites: []Predicate{HasFeat("iron-will")},
			Effect:        Effect{BonusTarget: "will_save", Bonus: 4, Description: "+4 on Will saves"},
		},
		{
			ID: "epic-fortitude", Name: "Epic Fortitude", Category: CategoryEpic,
			Prerequisites: []Predicate{HasFeat("great-fortitude")},
			Effect:        Effect{BonusTarget: "fortitude_save", Bonus: 4, Description: "+4 on Fortitude saves"},
		},
		{
			ID: "epic-reflexes", Name: "Epic Reflexes", Category: CategoryEpic,
			Prerequisites: []Predicate{HasFeat("lightning-reflexes")},
			Effect:        Effect{BonusTarget: "reflex_save", Bonus: 4, Description: "+4 on Reflex saves"},
		},
		{
			ID: "epic-reputation", Name: "Epic Reputation", Category: CategoryEpic,
			Effect: Effect{BonusTarget: "charisma_checks", Bonus: 4, Description: "+4 on Charisma-based checks"},
		},
		{
			ID: FeatEpicLeadership, Name: "Epic Leadership", Category: CategoryEpic,
			Prerequisites: []Predicate{
				MinLevel(21),
				MinAbility(epic.AbilityCharisma, 25),
				HasFeat("leadership"),
			},
			Effect: Effect{Unlock: "epic_cohort", Description: "Attract an epic cohort and vast followings"},
		},
		{
			ID: FeatLegendaryCommander, Name: "Legendary Commander", Category: CategoryEpic,
			Prerequisites: []Predicate{
				MinAbility(epic.AbilityCharisma, 25),
				HasFeat("leadership"),
				HasEpicFeat(FeatEpicLeadership),
			},
			Effect: Effect{Unlock: "army_command", Description: "Tenfold follower multiplier"},
		},
		{
			ID: FeatEpicSpellcasting, Name: "Epic Spellcasting", Category: CategoryEpicSpell,
			Prerequisites: []Predicate{MinSkillRank(SkillSpellcraft, 24)},
			Effect:        Effect{Unlock: "epic_spells", Description: "Develop and cast epic spells"},
		},
		{
			ID: FeatImprovedSpellCapacity, Name: "Improved Spell Capacity", Category: CategoryEpicSpell, Repeatable: true,
			Prerequisites: []Predicate{MinSkillRank(SkillSpellcraft, 21)},
			Effect:        Effect{BonusTarget: "spell_slots", Bonus: 1, Description: "One additional spell slot"},
		},
	}
}
