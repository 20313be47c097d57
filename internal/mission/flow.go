package mission

import (
	"github.com/google/uuid"
)

// View is the mission screen's sub-view.
type View int

const (
	ViewBriefing View = iota
	ViewMap
	ViewSuccess
)

func (v View) String() string {
	switch v {
	case ViewBriefing:
		return "briefing"
	case ViewMap:
		return "map"
	case ViewSuccess:
		return "success"
	}
	return "unknown"
}

// Launch identifies one simulation run. Only the outstanding launch of a
// live flow can complete.
type Launch struct {
	FlowID string
	Seq    uint64
}

// Generation identifies one mission-generation request.
type Generation struct {
	FlowID string
	Seq    uint64
}

// Flow is the mission screen's state machine for a single visit.
type Flow struct {
	id         string
	view       View
	running    bool
	launchSeq  uint64
	generated  *Mission
	generating bool
	genSeq     uint64
	closed     bool
}

// NewFlow returns a fresh flow on the briefing view.
func NewFlow() *Flow {
	return &Flow{id: uuid.NewString(), view: ViewBriefing}
}

func (f *Flow) ID() string {
	return f.id
}

func (f *Flow) View() View {
	return f.view
}

func (f *Flow) Running() bool {
	return f.running
}

func (f *Flow) Generating() bool {
	return f.generating
}

func (f *Flow) Closed() bool {
	return f.closed
}

// Generated returns the generated mission, if any.
func (f *Flow) Generated() (Mission, bool) {
	if f.generated == nil {
		return Mission{}, false
	}
	return *f.generated, true
}

// Briefing returns the generated mission or the stock briefing.
func (f *Flow) Briefing() Mission {
	if m, ok := f.Generated(); ok {
		return m
	}
	return DefaultBriefing()
}

// CanSwitchView reports whether the briefing/map toggle is enabled.
func (f *Flow) CanSwitchView() bool {
	return !f.closed && !f.running && f.view != ViewSuccess
}

// SwitchView toggles between briefing and map. It is rejected while a
// simulation runs and on the success view.
func (f *Flow) SwitchView(v View) bool {
	if !f.CanSwitchView() || (v != ViewBriefing && v != ViewMap) {
		return false
	}
	f.view = v
	return true
}

// CanLaunch reports whether a simulation may start.
func (f *Flow) CanLaunch() bool {
	return !f.closed && !f.running && f.view == ViewMap
}

// LaunchSimulation starts a run from the map view. The caller schedules
// CompleteSimulation with the returned token after the simulated duration.
func (f *Flow) LaunchSimulation() (Launch, bool) {
	if !f.CanLaunch() {
		return Launch{}, false
	}
	f.running = true
	f.launchSeq++
	return Launch{FlowID: f.id, Seq: f.launchSeq}, true
}

// CompleteSimulation finishes the outstanding run. Stale tokens and
// closed flows are ignored.
func (f *Flow) CompleteSimulation(l Launch) bool {
	if f.closed || !f.running || l.FlowID != f.id || l.Seq != f.launchSeq {
		return false
	}
	f.running = false
	f.view = ViewSuccess
	return true
}

// ReturnToBriefing leaves the success view and resets mission state.
func (f *Flow) ReturnToBriefing() bool {
	if f.closed || f.view != ViewSuccess {
		return false
	}
	f.view = ViewBriefing
	f.generated = nil
	f.running = false
	return true
}

// CanGenerate reports whether a generation request may be issued.
func (f *Flow) CanGenerate() bool {
	return !f.closed && !f.generating
}

// BeginGeneration marks a generation request in flight.
func (f *Flow) BeginGeneration() (Generation, bool) {
	if !f.CanGenerate() {
		return Generation{}, false
	}
	f.generating = true
	f.genSeq++
	return Generation{FlowID: f.id, Seq: f.genSeq}, true
}

// ApplyGeneration stores the parsed mission, or the fallback when text
// cannot be parsed, and clears the generating flag. The returned error is
// the parse failure, for logging only; the flow state is valid either way.
func (f *Flow) ApplyGeneration(g Generation, text string) (bool, error) {
	if f.closed || !f.generating || g.FlowID != f.id || g.Seq != f.genSeq {
		return false, nil
	}
	f.generating = false

	m, err := ParseMission(text)
	if err != nil {
		fb := FallbackMission()
		f.generated = &fb
		return true, err
	}
	f.generated = &m
	return true, nil
}

// Close tears the flow down. Pending timers and generation results are
// dropped when they arrive.
func (f *Flow) Close() {
	f.closed = true
	f.running = false
	f.generating = false
}
