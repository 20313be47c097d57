package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_SeedCatalogLoads(t *testing.T) {
	c := Default()

	if got := len(c.Lessons()); got != 2 {
		t.Fatalf("expected 2 lessons, got %d", got)
	}

	l, ok := c.Lesson(1)
	if !ok {
		t.Fatal("lesson 1 missing")
	}
	if l.Title != "Visual Casing" {
		t.Errorf("title = %q, want %q", l.Title, "Visual Casing")
	}
	if len(l.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(l.Steps))
	}
	if l.Steps[0].Kind != StepInfo || l.Steps[0].Visual != VisualCameraDiagram {
		t.Errorf("step 0 = %+v, want info with camera diagram", l.Steps[0])
	}

	opt, ok := l.Steps[1].Option("b")
	if !ok || !opt.Correct {
		t.Errorf("option b of step 1 should be correct, got %+v", opt)
	}
}

func TestLessonOrFirst(t *testing.T) {
	c := Default()

	if got := c.LessonOrFirst(2).ID; got != 2 {
		t.Errorf("LessonOrFirst(2) = %d, want 2", got)
	}
	if got := c.LessonOrFirst(99).ID; got != 1 {
		t.Errorf("LessonOrFirst(99) = %d, want fallback 1", got)
	}
}

func TestLeaderboardOrderAndCurrentUser(t *testing.T) {
	c := Default()
	board := c.Leaderboard()
	for i := 1; i < len(board); i++ {
		if board[i-1].Rank > board[i].Rank {
			t.Fatalf("leaderboard not sorted by rank: %+v", board)
		}
	}

	me, ok := c.CurrentUser()
	if !ok {
		t.Fatal("expected a current-user entry")
	}
	if me.Rank != 4 || me.XP != 4120 {
		t.Errorf("current user = %+v, want rank 4 with 4120 XP", me)
	}
}

func TestValidateLessons(t *testing.T) {
	twoOptions := func(aCorrect, bCorrect bool) []Option {
		return []Option{
			{ID: "a", Text: "A", Correct: aCorrect},
			{ID: "b", Text: "B", Correct: bCorrect},
		}
	}

	tests := []struct {
		name    string
		lessons []Lesson
		wantErr string
	}{
		{
			name:    "empty catalog",
			lessons: nil,
			wantErr: "no lessons",
		},
		{
			name: "duplicate lesson id",
			lessons: []Lesson{
				{ID: 1, Title: "x", Steps: []Step{{Kind: StepInfo, Content: "c"}}},
				{ID: 1, Title: "y", Steps: []Step{{Kind: StepInfo, Content: "c"}}},
			},
			wantErr: "duplicate lesson",
		},
		{
			name:    "no steps",
			lessons: []Lesson{{ID: 1, Title: "x"}},
			wantErr: "no steps",
		},
		{
			name: "two correct options",
			lessons: []Lesson{{ID: 1, Title: "x", Steps: []Step{
				{Kind: StepQuestion, Prompt: "q", Options: twoOptions(true, true)},
			}}},
			wantErr: "exactly one option",
		},
		{
			name: "no correct option",
			lessons: []Lesson{{ID: 1, Title: "x", Steps: []Step{
				{Kind: StepQuestion, Prompt: "q", Options: twoOptions(false, false)},
			}}},
			wantErr: "exactly one option",
		},
		{
			name: "duplicate option id",
			lessons: []Lesson{{ID: 1, Title: "x", Steps: []Step{
				{Kind: StepQuestion, Prompt: "q", Options: []Option{
					{ID: "a", Correct: true}, {ID: "a"},
				}},
			}}},
			wantErr: "duplicate option",
		},
		{
			name: "unknown kind",
			lessons: []Lesson{{ID: 1, Title: "x", Steps: []Step{
				{Kind: "quiz"},
			}}},
			wantErr: "unknown step kind",
		},
		{
			name: "unknown visual",
			lessons: []Lesson{{ID: 1, Title: "x", Steps: []Step{
				{Kind: StepInfo, Content: "c", Visual: "hologram"},
			}}},
			wantErr: "unknown visual",
		},
		{
			name: "valid",
			lessons: []Lesson{{ID: 1, Title: "x", Steps: []Step{
				{Kind: StepInfo, Content: "c"},
				{Kind: StepQuestion, Prompt: "q", Options: twoOptions(false, true)},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLessons(tt.lessons)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("lessons:\n  - id: 1\n    titel: typo\n"))
	if err == nil {
		t.Fatal("expected decode error for unknown field")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `lessons:
  - id: 7
    title: Night Moves
    module: Module 07
    steps:
      - kind: info
        content: Stay low.
leaderboard:
  - {rank: 2, name: B, xp: 10, tier: Bronze}
  - {rank: 1, name: A, xp: 20, tier: Gold, is_user: true}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.LessonOrFirst(1).ID != 7 {
		t.Errorf("expected fallback to lesson 7")
	}
	if c.Leaderboard()[0].Name != "A" {
		t.Errorf("leaderboard should be sorted by rank, got %+v", c.Leaderboard())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
