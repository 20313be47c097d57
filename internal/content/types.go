package content

// StepKind distinguishes informational steps from scored questions.
type StepKind string

const (
	StepInfo     StepKind = "info"
	StepQuestion StepKind = "question"
)

// Visual tags an optional illustration shown beside an info step.
type Visual string

const (
	VisualNone          Visual = ""
	VisualCameraDiagram Visual = "camera_diagram"
	VisualPhoneSignal   Visual = "phone_signal"
)

// Option is one selectable answer to a question step.
type Option struct {
	ID       string `yaml:"id"`
	Text     string `yaml:"text"`
	Correct  bool   `yaml:"correct"`
	Feedback string `yaml:"feedback"`
}

// Step is one unit of lesson content. Info steps use Content and Visual;
// question steps use Prompt and Options.
type Step struct {
	Kind    StepKind `yaml:"kind"`
	Content string   `yaml:"content,omitempty"`
	Visual  Visual   `yaml:"visual,omitempty"`
	Prompt  string   `yaml:"prompt,omitempty"`
	Options []Option `yaml:"options,omitempty"`
}

// IsQuestion reports whether the step is scored.
func (s Step) IsQuestion() bool {
	return s.Kind == StepQuestion
}

// Option returns the option with the given id.
func (s Step) Option(id string) (Option, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Lesson is an ordered training unit.
type Lesson struct {
	ID     int    `yaml:"id"`
	Title  string `yaml:"title"`
	Module string `yaml:"module"`
	Steps  []Step `yaml:"steps"`
}

// LeaderboardEntry is one ranked operative.
type LeaderboardEntry struct {
	Rank   int    `yaml:"rank"`
	Name   string `yaml:"name"`
	XP     int    `yaml:"xp"`
	Tier   string `yaml:"tier"`
	IsUser bool   `yaml:"is_user,omitempty"`
}
