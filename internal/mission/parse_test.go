package mission

import (
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"padded", "  \n{\"a\":1}\n ", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"single line fence", "```json{\"a\":1}```", `{"a":1}`},
		{"single line bare", "```{\"a\":1}```", `{"a":1}`},
		{"prose around", "Here you go:\n```json\n{\"a\":1}\n```\nGood luck.", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMission(t *testing.T) {
	m, err := ParseMission("```json\n" + validJSON + "\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Mission{
		Codename:   "Op: Glass Wolf",
		Difficulty: "HARD",
		Objective:  "Lift the ledger",
		Threat:     "High",
		Tactics:    "Go dark at 0300.",
	}
	if m != want {
		t.Errorf("ParseMission = %+v, want %+v", m, want)
	}
}

func TestParseMission_TacticsOptional(t *testing.T) {
	m, err := ParseMission(`{"codename":"c","difficulty":"d","objective":"o","threat":"t"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Tactics != "" {
		t.Errorf("expected empty tactics, got %q", m.Tactics)
	}
}

func TestParseMission_Rejects(t *testing.T) {
	bad := []string{
		"",
		"```json\n```",
		"not json at all",
		`["codename"]`,
		`{"codename":1,"difficulty":"d","objective":"o","threat":"t"}`,
		`{"difficulty":"d","objective":"o","threat":"t"}`,
	}
	for _, in := range bad {
		if _, err := ParseMission(in); err == nil {
			t.Errorf("ParseMission(%q) expected error", in)
		}
	}
}
