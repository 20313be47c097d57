package nav

import (
	"strconv"
	"strings"
)

// Tab is a primary navigation tab.
type Tab int

const (
	TabHome Tab = iota
	TabLessons
	TabMissions
	TabProfile
	TabAdvisor
)

var tabNames = map[Tab]string{
	TabHome:     "Home",
	TabLessons:  "Lessons",
	TabMissions: "Missions",
	TabProfile:  "Profile",
	TabAdvisor:  "Oracle",
}

// Tabs returns the primary tabs in display order.
func Tabs() []Tab {
	return []Tab{TabHome, TabLessons, TabMissions, TabProfile, TabAdvisor}
}

func (t Tab) String() string {
	if n, ok := tabNames[t]; ok {
		return n
	}
	return "Unknown"
}

// Valid reports whether t is one of the declared tabs.
func (t Tab) Valid() bool {
	_, ok := tabNames[t]
	return ok
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	tabs := Tabs()
	return tabs[(t.index()+1)%len(tabs)]
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	tabs := Tabs()
	return tabs[(t.index()+len(tabs)-1)%len(tabs)]
}

func (t Tab) index() int {
	for i, tab := range Tabs() {
		if tab == t {
			return i
		}
	}
	return 0
}

// Target is anything Navigate accepts: a TabTarget or an Overlay.
type Target interface {
	isTarget()
}

// TabTarget selects a primary tab and clears any overlay.
type TabTarget struct {
	Tab Tab
}

// Home is the canonical landing target.
func Home() TabTarget {
	return TabTarget{Tab: TabHome}
}

// Overlay is a sub-view that supersedes the active tab until cleared.
type Overlay interface {
	Target
	OverlayName() string
}

// LessonOverlay opens a lesson session.
type LessonOverlay struct {
	LessonID int
}

// LessonListOverlay shows the training module list.
type LessonListOverlay struct{}

// SimulationsOverlay opens the mission flow from a quick-module shortcut.
type SimulationsOverlay struct{}

// RolesOverlay shows the classified roles screen.
type RolesOverlay struct{}

// UnknownOverlay carries a name no screen is registered for.
type UnknownOverlay struct {
	Name string
}

func (TabTarget) isTarget()          {}
func (LessonOverlay) isTarget()      {}
func (LessonListOverlay) isTarget()  {}
func (SimulationsOverlay) isTarget() {}
func (RolesOverlay) isTarget()       {}
func (UnknownOverlay) isTarget()     {}

func (LessonOverlay) OverlayName() string      { return "lesson" }
func (LessonListOverlay) OverlayName() string  { return "lessons_list" }
func (SimulationsOverlay) OverlayName() string { return "sims" }
func (RolesOverlay) OverlayName() string       { return "roles" }
func (o UnknownOverlay) OverlayName() string   { return o.Name }

// View is what the screen host should render. When Overlay is non-nil it
// wins over Tab. View values are comparable.
type View struct {
	Tab     Tab
	Overlay Overlay
}

// IsOverlay reports whether the view is an overlay.
func (v View) IsOverlay() bool {
	return v.Overlay != nil
}

// State holds the active tab and optional overlay.
type State struct {
	tab     Tab
	overlay Overlay
}

// New returns a State on the Home tab with no overlay.
func New() *State {
	return &State{tab: TabHome}
}

// Navigate is the single mutation entry point. A tab target clears the
// overlay and switches tab; an overlay target is stored and leaves the tab
// unchanged.
func (s *State) Navigate(t Target) {
	switch t := t.(type) {
	case TabTarget:
		s.overlay = nil
		s.tab = t.Tab
	case Overlay:
		s.overlay = t
	}
}

// Tab returns the active primary tab as stored.
func (s *State) Tab() Tab {
	return s.tab
}

// Overlay returns the active overlay, or nil.
func (s *State) Overlay() Overlay {
	return s.overlay
}

// Resolve returns what should be visible. An unknown tab falls back to Home.
func (s *State) Resolve() View {
	if s.overlay != nil {
		return View{Tab: s.resolvedTab(), Overlay: s.overlay}
	}
	return View{Tab: s.resolvedTab()}
}

func (s *State) resolvedTab() Tab {
	if !s.tab.Valid() {
		return TabHome
	}
	return s.tab
}

// ParseTarget maps a legacy string identifier and parameter bag to a typed
// target. Unrecognized names become an UnknownOverlay.
func ParseTarget(name string, params map[string]any) Target {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "home":
		return Home()
	case "lessons":
		return TabTarget{Tab: TabLessons}
	case "missions":
		return TabTarget{Tab: TabMissions}
	case "profile":
		return TabTarget{Tab: TabProfile}
	case "mentor", "advisor", "oracle":
		return TabTarget{Tab: TabAdvisor}
	case "lesson":
		id, _ := intParam(params, "lessonId")
		return LessonOverlay{LessonID: id}
	case "lessons_list":
		return LessonListOverlay{}
	case "sims":
		return SimulationsOverlay{}
	case "roles":
		return RolesOverlay{}
	}
	return UnknownOverlay{Name: name}
}

func intParam(params map[string]any, key string) (int, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}
