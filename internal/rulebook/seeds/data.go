package seeds

// DefaultCatalog returns the standard seed content
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(defaultSeeds())
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

func defaultSeeds() []Seed {
	return []Seed{
		{ID: "afflict", Name: "Afflict", School: "enchantment", BaseDC: 14, Description: "Impose a penalty on the target"},
		{ID: "animate", Name: "Animate", School: "transmutation", BaseDC: 25, Description: "Grant motion to an object"},
		{ID: "animate-dead", Name: "Animate Dead", School: "necromancy", BaseDC: 23, Description: "Raise corpses as undead"},
		{ID: "armor", Name: "Armor", School: "conjuration", BaseDC: 14, Description: "Grant an armor bonus"},
		{ID: "banish", Name: "Banish", School: "abjuration", BaseDC: 27, Description: "Force extraplanar creatures away"},
		{ID: "compel", Name: "Compel", School: "enchantment", BaseDC: 19, Description: "Force a course of action"},
		{ID: "conceal", Name: "Conceal", School: "illusion", BaseDC: 17, Description: "Hide a target from detection"},
		{ID: "conjure", Name: "Conjure", School: "conjuration", BaseDC: 21, Description: "Create matter from nothing"},
		{ID: "contact", Name: "Contact", School: "divination", BaseDC: 23, Description: "Open a mental channel"},
		{ID: "delude", Name: "Delude", School: "illusion", BaseDC: 14, Description: "Create a false sensory impression"},
		{ID: "destroy", Name: "Destroy", School: "evocation", BaseDC: 29, Description: "Deal raw destructive damage"},
		{ID: "dispel", Name: "Dispel", School: "abjuration", BaseDC: 19, Description: "End ongoing magic"},
		{ID: "energy", Name: "Energy", School: "evocation", BaseDC: 19, Description: "Shape a chosen energy type"},
		{ID: "foresee", Name: "Foresee", School: "divination", BaseDC: 17, Description: "Glimpse future events"},
		{ID: "fortify", Name: "Fortify", School: "transmutation", BaseDC: 17, Description: "Grant an enhancement bonus"},
		{ID: "heal", Name: "Heal", School: "conjuration", BaseDC: 25, Description: "Restore hit points and cure afflictions"},
		{ID: "life", Name: "Life", School: "conjuration", BaseDC: 27, Description: "Return the dead to life"},
		{ID: "reflect", Name: "Reflect", School: "abjuration", BaseDC: 27, Description: "Turn attacks back on their source"},
		{ID: "reveal", Name: "Reveal", School: "divination", BaseDC: 19, Description: "See the hidden and the distant"},
		{ID: "slay", Name: "Slay", School: "necromancy", BaseDC: 25, Description: "Kill a living target outright"},
		{ID: "summon", Name: "Summon", School: "conjuration", BaseDC: 14, Description: "Call a creature to serve"},
		{ID: "transform", Name: "Transform", School: "transmutation", BaseDC: 21, Description: "Change a target's form"},
		{ID: "transport", Name: "Transport", School: "conjuration", BaseDC: 27, Description: "Move instantly between places"},
		{ID: "ward", Name: "Ward", School: "abjuration", BaseDC: 14, Description: "Grant protective resistance"},
	}
}
