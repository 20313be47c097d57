package profile

// Stats is the learner's process-lifetime progress.
type Stats struct {
	XP               int
	Streak           int
	LessonsCompleted int
}

// Store owns Stats. CompleteLesson is the only mutation.
type Store struct {
	stats Stats
}

// NewStore creates a Store seeded with the given stats.
func NewStore(initial Stats) *Store {
	return &Store{stats: initial}
}

// Snapshot returns a copy of the current stats.
func (s *Store) Snapshot() Stats {
	return s.stats
}

// CompleteLesson credits a finished lesson. Negative awards are ignored so
// XP never decreases.
func (s *Store) CompleteLesson(xp int) Stats {
	if xp < 0 {
		return s.stats
	}
	s.stats.XP += xp
	s.stats.LessonsCompleted++
	return s.stats
}
