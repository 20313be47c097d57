package mission

// Mission is a briefing record, either the stock one or one generated by
// the advisory service.
type Mission struct {
	Codename   string `json:"codename"`
	Difficulty string `json:"difficulty"`
	Objective  string `json:"objective"`
	Threat     string `json:"threat"`
	Tactics    string `json:"tactics,omitempty"`
}

// DefaultBriefing is shown until a mission has been generated.
func DefaultBriefing() Mission {
	return Mission{
		Codename:   "Op: Paloma Extraction",
		Difficulty: "INTERMEDIATE",
		Objective:  "Simulate the extraction of a high-value artifact (Paloma Lisa replica)",
		Threat:     "Moderate",
	}
}

// FallbackMission replaces a generated mission that could not be parsed.
// Every field is populated.
func FallbackMission() Mission {
	return Mission{
		Codename:   "Operation: Static Noise",
		Difficulty: "Unknown",
		Objective:  "Manual Override Required. AI Generation Failed.",
		Threat:     "Critical",
		Tactics:    "Proceed with caution.",
	}
}

// GeneratePrompt is the fixed request sent to the advisory service.
const GeneratePrompt = "Generate a short, unique cybersecurity/heist mission briefing. " +
	"Return JSON with keys: 'codename', 'difficulty', 'objective', 'threat', 'tactics'. " +
	"Make it sound futuristic and dangerous."

// SystemInstruction is the persona used for mission generation.
const SystemInstruction = "You are a tactical mission computer for elite thieves. Output strict JSON only."
