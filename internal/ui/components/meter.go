package components

import (
	"math"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"
)

const meterFPS = 60

var lastMeterID atomic.Int64

// MeterFrameMsg advances one meter's spring by a frame.
type MeterFrameMsg struct {
	id int64
}

// Meter is a progress bar whose fill eases toward its target on a
// critically damped spring.
type Meter struct {
	id     int64
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewMeter returns a meter resting at value.
func NewMeter(value float64) Meter {
	v := clamp01(value)
	return Meter{
		id:     lastMeterID.Add(1),
		spring: harmonica.NewSpring(harmonica.FPS(meterFPS), 10.0, 0.8),
		pos:    v,
		target: v,
	}
}

// SetTarget starts easing toward v. The returned command drives the
// animation and is nil when the meter is already there.
func (m Meter) SetTarget(v float64) (Meter, tea.Cmd) {
	m.target = clamp01(v)
	if m.Settled() {
		return m, nil
	}
	return m, m.frame()
}

// Update consumes frames addressed to this meter.
func (m Meter) Update(msg tea.Msg) (Meter, tea.Cmd) {
	f, ok := msg.(MeterFrameMsg)
	if !ok || f.id != m.id {
		return m, nil
	}

	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if !m.Settled() {
		return m, m.frame()
	}
	m.pos, m.vel = m.target, 0
	return m, nil
}

// Value is the currently displayed fill in [0, 1].
func (m Meter) Value() float64 {
	return clamp01(m.pos)
}

// Target is the fill the meter is easing toward.
func (m Meter) Target() float64 {
	return m.target
}

// Settled reports whether the meter has reached its target.
func (m Meter) Settled() bool {
	return math.Abs(m.pos-m.target) < 0.001 && math.Abs(m.vel) < 0.001
}

// View renders the meter as a progress bar.
func (m Meter) View(label string, showPercent bool, width int) string {
	return NewProgressBar(label, m.Value(), showPercent, width).View()
}

func (m Meter) frame() tea.Cmd {
	id := m.id
	return tea.Tick(time.Second/meterFPS, func(time.Time) tea.Msg {
		return MeterFrameMsg{id: id}
	})
}
