package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_StartsHome(t *testing.T) {
	s := New()
	assert.Equal(t, View{Tab: TabHome}, s.Resolve())
	assert.Nil(t, s.Overlay())
}

func TestNavigate_TabClearsOverlay(t *testing.T) {
	s := New()
	s.Navigate(LessonOverlay{LessonID: 2})
	assert.True(t, s.Resolve().IsOverlay())

	s.Navigate(TabTarget{Tab: TabMissions})
	assert.Equal(t, View{Tab: TabMissions}, s.Resolve())
}

func TestNavigate_OverlayKeepsTab(t *testing.T) {
	s := New()
	s.Navigate(TabTarget{Tab: TabProfile})
	s.Navigate(RolesOverlay{})

	assert.Equal(t, TabProfile, s.Tab())
	v := s.Resolve()
	assert.Equal(t, RolesOverlay{}, v.Overlay)

	s.Navigate(Home())
	assert.Equal(t, View{Tab: TabHome}, s.Resolve())
}

func TestNavigate_OverlayReplacesOverlay(t *testing.T) {
	s := New()
	s.Navigate(LessonListOverlay{})
	s.Navigate(LessonOverlay{LessonID: 1})
	assert.Equal(t, LessonOverlay{LessonID: 1}, s.Resolve().Overlay)
}

func TestResolve_UnknownTabFallsBackHome(t *testing.T) {
	s := New()
	s.Navigate(TabTarget{Tab: Tab(42)})
	assert.Equal(t, View{Tab: TabHome}, s.Resolve())
}

func TestViewsAreComparable(t *testing.T) {
	a := View{Tab: TabHome, Overlay: UnknownOverlay{Name: "vault"}}
	b := View{Tab: TabHome, Overlay: UnknownOverlay{Name: "vault"}}
	c := View{Tab: TabHome, Overlay: LessonOverlay{LessonID: 1}}
	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
		want   Target
	}{
		{"home", nil, TabTarget{Tab: TabHome}},
		{"lessons", nil, TabTarget{Tab: TabLessons}},
		{"missions", nil, TabTarget{Tab: TabMissions}},
		{"profile", nil, TabTarget{Tab: TabProfile}},
		{"mentor", nil, TabTarget{Tab: TabAdvisor}},
		{"Advisor", nil, TabTarget{Tab: TabAdvisor}},
		{"lesson", map[string]any{"lessonId": 2}, LessonOverlay{LessonID: 2}},
		{"lesson", map[string]any{"lessonId": float64(1)}, LessonOverlay{LessonID: 1}},
		{"lesson", map[string]any{"lessonId": "2"}, LessonOverlay{LessonID: 2}},
		{"lesson", nil, LessonOverlay{LessonID: 0}},
		{"lessons_list", nil, LessonListOverlay{}},
		{"sims", nil, SimulationsOverlay{}},
		{"roles", nil, RolesOverlay{}},
		{"vault", nil, UnknownOverlay{Name: "vault"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTarget(tt.name, tt.params))
		})
	}
}

func TestUnknownOverlayIsNotAnError(t *testing.T) {
	s := New()
	s.Navigate(ParseTarget("blackmarket", nil))
	v := s.Resolve()
	assert.True(t, v.IsOverlay())
	assert.Equal(t, "blackmarket", v.Overlay.OverlayName())
}

func TestTabCycling(t *testing.T) {
	assert.Equal(t, TabLessons, TabHome.Next())
	assert.Equal(t, TabHome, TabAdvisor.Next())
	assert.Equal(t, TabAdvisor, TabHome.Prev())
	assert.Equal(t, "Oracle", TabAdvisor.String())
	assert.Equal(t, "Unknown", Tab(9).String())
}
