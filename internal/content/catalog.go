package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the read-only lesson and leaderboard data set.
type Catalog struct {
	lessons     []Lesson
	byID        map[int]int
	leaderboard []LeaderboardEntry
}

type catalogFile struct {
	Lessons     []Lesson           `yaml:"lessons"`
	Leaderboard []LeaderboardEntry `yaml:"leaderboard"`
}

// Default returns the embedded catalog. It panics if the embedded data is
// malformed, which is caught by the package tests.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(file.Lessons, file.Leaderboard)
}

// New builds a Catalog from in-memory data after validating it.
func New(lessons []Lesson, leaderboard []LeaderboardEntry) (*Catalog, error) {
	if err := validateLessons(lessons); err != nil {
		return nil, err
	}

	c := &Catalog{
		lessons:     append([]Lesson(nil), lessons...),
		byID:        make(map[int]int, len(lessons)),
		leaderboard: append([]LeaderboardEntry(nil), leaderboard...),
	}
	for i, l := range c.lessons {
		c.byID[l.ID] = i
	}
	sort.SliceStable(c.leaderboard, func(i, j int) bool {
		return c.leaderboard[i].Rank < c.leaderboard[j].Rank
	})
	return c, nil
}

// Lessons returns all lessons in catalog order.
func (c *Catalog) Lessons() []Lesson {
	return c.lessons
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id int) (Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return c.lessons[i], true
}

// LessonOrFirst returns the lesson with the given id, falling back to the
// first lesson in the catalog when the id is unknown.
func (c *Catalog) LessonOrFirst(id int) Lesson {
	if l, ok := c.Lesson(id); ok {
		return l
	}
	return c.lessons[0]
}

// Leaderboard returns entries ordered by rank.
func (c *Catalog) Leaderboard() []LeaderboardEntry {
	return c.leaderboard
}

// CurrentUser returns the leaderboard entry flagged as the learner.
func (c *Catalog) CurrentUser() (LeaderboardEntry, bool) {
	for _, e := range c.leaderboard {
		if e.IsUser {
			return e, true
		}
	}
	return LeaderboardEntry{}, false
}
