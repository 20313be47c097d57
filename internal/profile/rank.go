package profile

// XPPerLevel is the experience needed to move up one level.
const XPPerLevel = 1000

// Level returns the 1-based level for the given XP.
func Level(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// RankProgress returns progress through the current level in [0, 1).
func RankProgress(xp int) float64 {
	if xp < 0 {
		return 0
	}
	return float64(xp%XPPerLevel) / XPPerLevel
}

// XPToNextLevel returns the XP still needed to reach the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		return XPPerLevel
	}
	return XPPerLevel - xp%XPPerLevel
}

var rankTitles = []string{"Rookie", "Operative", "Ghostwalker", "Phantom"}

// RankTitle returns the display rank for a level. Levels past the table
// keep the highest title.
func RankTitle(level int) string {
	i := (level - 1) / 2
	if i < 0 {
		i = 0
	}
	if i >= len(rankTitles) {
		i = len(rankTitles) - 1
	}
	return rankTitles[i]
}

// NextRankTitle returns the title after the one for level, or the same
// title at the top of the table.
func NextRankTitle(level int) string {
	return RankTitle(level + 2)
}
