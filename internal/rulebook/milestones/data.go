package milestones

import "github.com/tbaillis/epic-api/internal/entities/epic"

// DefaultRegistry returns the standard milestone content
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(defaultDescriptors())
}

// MustDefaultRegistry is DefaultRegistry for wiring paths where the static
// content is known valid.
func MustDefaultRegistry() *Registry {
	r, err := DefaultRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

func minLevel(level int32) Predicate {
	return func(s *epic.CharacterSnapshot) bool {
		return s.Level >= level
	}
}

func defaultDescriptors() []Descriptor {
	return []Descriptor{
		{
			ID: "epic-ascendant", Name: "Epic Ascendant",
			Reward:    "Crossed into epic levels",
			Predicate: minLevel(21),
		},
		{
			ID: "legend-of-the-age", Name: "Legend of the Age",
			Reward:    "Reached level 30",
			Predicate: minLevel(30),
		},
		{
			ID: "beyond-mortality", Name: "Beyond Mortality",
			Reward:    "Reached level 50",
			Predicate: minLevel(50),
		},
		{
			ID: "walker-of-worlds", Name: "Walker of Worlds",
			Reward:    "Reached level 80",
			Predicate: minLevel(80),
		},
		{
			ID: "century-soul", Name: "Century Soul",
			Reward:    "Reached level 100",
			Predicate: minLevel(100),
		},
		{
			ID: "master-of-ten-arts", Name: "Master of Ten Arts",
			Reward: "Hold ten epic capabilities",
			Predicate: func(s *epic.CharacterSnapshot) bool {
				return len(s.EpicFeats) >= 10
			},
		},
		{
			ID: "paragon-of-form", Name: "Paragon of Form",
			Reward: "Raise any ability score to 40",
			Predicate: func(s *epic.CharacterSnapshot) bool {
				for _, a := range epic.Abilities {
					if s.AbilityScores.Score(a) >= 40 {
						return true
					}
				}
				return false
			},
		},
		{
			ID: "weaver-of-seeds", Name: "Weaver of Seeds",
			Reward: "Develop a first epic spell",
			Predicate: func(s *epic.CharacterSnapshot) bool {
				return len(s.KnownCompositions) >= 1
			},
		},
		{
			ID: "first-spark-of-divinity", Name: "First Spark of Divinity",
			Reward: "Ascend to divine rank 1",
			Predicate: func(s *epic.CharacterSnapshot) bool {
				return s.DivineRank >= 1
			},
		},
		{
			ID: "throne-above-thrones", Name: "Throne Above Thrones",
			Reward: "Reach divine rank 20",
			Predicate: func(s *epic.CharacterSnapshot) bool {
				return s.DivineRank >= epic.MaxDivineRank
			},
		},
	}
}
