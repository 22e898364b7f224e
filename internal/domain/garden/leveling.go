package garden

// LevelFor returns the level of the highest table threshold at or below xp.
// The table is ordered ascending; the top step is unbounded.
func (e Engine) LevelFor(xp int) int {
	level := 1
	for _, step := range e.cfg.LevelTable {
		if xp < step.XPThreshold {
			break
		}
		level = step.Level
	}
	return level
}

// MoodFor is a pure function of current health, recomputed on every
// transition. Mood is never sticky.
func (e Engine) MoodFor(health int) Mood {
	switch {
	case health >= e.cfg.HappyHealthMin:
		return MoodHappy
	case health >= e.cfg.NeutralHealthMin:
		return MoodNeutral
	default:
		return MoodSad
	}
}
