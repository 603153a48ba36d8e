package progression

// RequiredExperience returns the experience point total a character must
// hold to reach the given level. The table is seeded at level 21 =
// 210,000 and grows by a compounding per-level increment: reaching level
// L costs 1000*(L-1) more than reaching L-1, which closes to the
// triangular form below.
func RequiredExperience(level int32) int64 {
	if level <= 1 {
		return 0
	}
	l := int64(level)
	return 1000 * l * (l - 1) / 2
}
