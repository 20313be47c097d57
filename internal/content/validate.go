package content

import (
	"fmt"
	"strings"
)

// validateLessons performs all structural checks on the given lessons.
// Returns a combined error describing all problems found, or nil if valid.
func validateLessons(lessons []Lesson) error {
	var errs []string

	if len(lessons) == 0 {
		errs = append(errs, "catalog has no lessons")
	}

	ids := make(map[int]bool, len(lessons))
	for _, l := range lessons {
		if ids[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %d", l.ID))
		}
		ids[l.ID] = true

		if strings.TrimSpace(l.Title) == "" {
			errs = append(errs, fmt.Sprintf("lesson %d has no title", l.ID))
		}
		if len(l.Steps) == 0 {
			errs = append(errs, fmt.Sprintf("lesson %d has no steps", l.ID))
		}

		for i, s := range l.Steps {
			prefix := fmt.Sprintf("lesson %d step %d", l.ID, i)
			switch s.Kind {
			case StepInfo:
				if strings.TrimSpace(s.Content) == "" {
					errs = append(errs, prefix+": info step has no content")
				}
				switch s.Visual {
				case VisualNone, VisualCameraDiagram, VisualPhoneSignal:
				default:
					errs = append(errs, fmt.Sprintf("%s: unknown visual %q", prefix, s.Visual))
				}
			case StepQuestion:
				errs = append(errs, validateQuestion(prefix, s)...)
			default:
				errs = append(errs, fmt.Sprintf("%s: unknown step kind %q", prefix, s.Kind))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuestion(prefix string, s Step) []string {
	var errs []string

	if strings.TrimSpace(s.Prompt) == "" {
		errs = append(errs, prefix+": question has no prompt")
	}
	if len(s.Options) < 2 {
		errs = append(errs, fmt.Sprintf("%s: question needs at least 2 options, got %d", prefix, len(s.Options)))
	}

	seen := make(map[string]bool, len(s.Options))
	correct := 0
	for _, o := range s.Options {
		if o.ID == "" {
			errs = append(errs, prefix+": option with empty ID")
		}
		if seen[o.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate option ID %q", prefix, o.ID))
		}
		seen[o.ID] = true
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		errs = append(errs, fmt.Sprintf("%s: exactly one option must be correct, got %d", prefix, correct))
	}
	return errs
}
