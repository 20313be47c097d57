package profile

import (
	"testing"
)

func TestCompleteLesson(t *testing.T) {
	s := NewStore(Stats{XP: 4120, Streak: 4, LessonsCompleted: 24})

	got := s.CompleteLesson(50)
	if got.XP != 4170 {
		t.Errorf("XP = %d, want 4170", got.XP)
	}
	if got.LessonsCompleted != 25 {
		t.Errorf("LessonsCompleted = %d, want 25", got.LessonsCompleted)
	}
	if got.Streak != 4 {
		t.Errorf("Streak changed to %d", got.Streak)
	}
	if s.Snapshot() != got {
		t.Errorf("Snapshot() = %+v, want %+v", s.Snapshot(), got)
	}
}

func TestCompleteLesson_IgnoresNegative(t *testing.T) {
	s := NewStore(Stats{XP: 100})
	s.CompleteLesson(-10)
	if snap := s.Snapshot(); snap.XP != 100 || snap.LessonsCompleted != 0 {
		t.Errorf("negative award mutated stats: %+v", snap)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(Stats{XP: 10})
	snap := s.Snapshot()
	snap.XP = 9999
	if s.Snapshot().XP != 10 {
		t.Error("mutating a snapshot changed the store")
	}
}

func TestLevelAndRank(t *testing.T) {
	tests := []struct {
		xp        int
		level     int
		progress  float64
		toNext    int
		rank      string
		nextTitle string
	}{
		{0, 1, 0, 1000, "Rookie", "Operative"},
		{999, 1, 0.999, 1, "Rookie", "Operative"},
		{1000, 2, 0, 1000, "Rookie", "Operative"},
		{2500, 3, 0.5, 500, "Operative", "Ghostwalker"},
		{4120, 5, 0.12, 880, "Ghostwalker", "Phantom"},
		{50000, 51, 0, 1000, "Phantom", "Phantom"},
		{-5, 1, 0, 1000, "Rookie", "Operative"},
	}

	for _, tt := range tests {
		lvl := Level(tt.xp)
		if lvl != tt.level {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, lvl, tt.level)
		}
		if p := RankProgress(tt.xp); p < tt.progress-1e-9 || p > tt.progress+1e-9 {
			t.Errorf("RankProgress(%d) = %f, want %f", tt.xp, p, tt.progress)
		}
		if n := XPToNextLevel(tt.xp); n != tt.toNext {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", tt.xp, n, tt.toNext)
		}
		if r := RankTitle(lvl); r != tt.rank {
			t.Errorf("RankTitle(%d) = %q, want %q", lvl, r, tt.rank)
		}
		if r := NextRankTitle(lvl); r != tt.nextTitle {
			t.Errorf("NextRankTitle(%d) = %q, want %q", lvl, r, tt.nextTitle)
		}
	}
}
