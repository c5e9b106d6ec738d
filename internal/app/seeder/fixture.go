package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fixture is a YAML document describing tracker data to load.
type Fixture struct {
	Pipeline     PipelineFixture      `yaml:"pipeline"`
	Boards       []BoardFixture       `yaml:"boards"`
	Applications []ApplicationFixture `yaml:"applications"`
}

// PipelineFixture lists labels to add on top of the current pipeline.
type PipelineFixture struct {
	Active   []string `yaml:"active"`
	Inactive []string `yaml:"inactive"`
}

type BoardFixture struct {
	Name       string   `yaml:"name"`
	RootDomain string   `yaml:"root_domain"`
	Domains    []string `yaml:"domains"`
}

type ApplicationFixture struct {
	Company     string             `yaml:"company"`
	Position    string             `yaml:"position"`
	AppliedOn   string             `yaml:"applied_on"`
	Interest    *int               `yaml:"interest"`
	NextEvent   string             `yaml:"next_event"`
	URL         string             `yaml:"url"`
	Description string             `yaml:"description"`
	Source      string             `yaml:"source"`
	Statuses    []StatusFixture    `yaml:"statuses"`
	Notes       []string           `yaml:"notes"`
	Contacts    []ContactFixture   `yaml:"contacts"`
	Interviews  []InterviewFixture `yaml:"interviews"`
}

// StatusFixture is a status change applied after creation, in order.
type StatusFixture struct {
	Category string `yaml:"category"`
	Label    string `yaml:"label"`
	Note     string `yaml:"note"`
}

type ContactFixture struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	LinkedIn     string `yaml:"linkedin"`
	Role         string `yaml:"role"`
	Channel      string `yaml:"channel"`
	OutreachDate string `yaml:"outreach_date"`
	Responded    bool   `yaml:"responded"`
	Notes        string `yaml:"notes"`
}

type InterviewFixture struct {
	Round     int               `yaml:"round"`
	Type      string            `yaml:"type"`
	Final     bool              `yaml:"final"`
	Scheduled string            `yaml:"scheduled"`
	Completed string            `yaml:"completed"`
	Notes     string            `yaml:"notes"`
	Questions []QuestionFixture `yaml:"questions"`
}

type QuestionFixture struct {
	Title  string `yaml:"title"`
	Answer string `yaml:"answer"`
}

// key identifies an application across runs.
func (a ApplicationFixture) key() string {
	return appKey(a.Company, a.Position)
}

func appKey(company, position string) string {
	return strings.ToLower(strings.TrimSpace(company)) + "\x00" + strings.ToLower(strings.TrimSpace(position))
}

// LoadFixture reads and parses the fixture at path.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	fx, err := ParseFixture(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fx, nil
}

// ParseFixture decodes a fixture. Unknown keys are rejected.
func ParseFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fx, nil
}
