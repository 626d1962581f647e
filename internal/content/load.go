package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/decisionroom/decisionroom/internal/decision"
	"gopkg.in/yaml.v3"
)

const (
	casesFile     = "data/cases.yaml"
	scenariosFile = "data/scenarios.yaml"

	minSignals = 3
	maxSignals = 4
)

//go:embed data/*.yaml
var embeddedFS embed.FS

var defaultCases, defaultScenarios = mustLoadEmbedded()

// Cases returns the process-wide decision cases table.
func Cases() Table[Case] {
	return defaultCases
}

// Scenarios returns the process-wide simulator scenarios table.
func Scenarios() ScenarioTable {
	return defaultScenarios
}

type casesDocument struct {
	Cases []caseDocument `yaml:"cases"`
}

type caseDocument struct {
	ID        string           `yaml:"id"`
	Category  string           `yaml:"category"`
	Title     string           `yaml:"title"`
	Context   string           `yaml:"context"`
	Signals   []string         `yaml:"signals"`
	Decision  decisionDocument `yaml:"decision"`
	Rationale []string         `yaml:"rationale"`
}

type decisionDocument struct {
	Verdict   string `yaml:"verdict"`
	Qualifier string `yaml:"qualifier"`
}

type scenariosDocument struct {
	Scenarios []scenarioDocument `yaml:"scenarios"`
}

type scenarioDocument struct {
	ID            string            `yaml:"id"`
	Category      string            `yaml:"category"`
	Title         string            `yaml:"title"`
	Context       string            `yaml:"context"`
	Signals       []string          `yaml:"signals"`
	Reasoning     map[string]string `yaml:"reasoning"`
	Preferred     string            `yaml:"preferred"`
	Justification string            `yaml:"justification"`
}

// LoadFromFS parses and validates the case and scenario tables found in fsys.
func LoadFromFS(fsys fs.FS) (Table[Case], ScenarioTable, error) {
	casesData, err := fs.ReadFile(fsys, casesFile)
	if err != nil {
		return Table[Case]{}, ScenarioTable{}, fmt.Errorf("read %s: %w", casesFile, err)
	}
	cases, err := ParseCases(casesData)
	if err != nil {
		return Table[Case]{}, ScenarioTable{}, fmt.Errorf("parse %s: %w", casesFile, err)
	}
	scenariosData, err := fs.ReadFile(fsys, scenariosFile)
	if err != nil {
		return Table[Case]{}, ScenarioTable{}, fmt.Errorf("read %s: %w", scenariosFile, err)
	}
	scenarios, err := ParseScenarios(scenariosData)
	if err != nil {
		return Table[Case]{}, ScenarioTable{}, fmt.Errorf("parse %s: %w", scenariosFile, err)
	}
	return cases, scenarios, nil
}

// ParseCases decodes and validates a cases document.
func ParseCases(data []byte) (Table[Case], error) {
	var doc casesDocument
	if err := decodeStrict(data, &doc); err != nil {
		return Table[Case]{}, err
	}
	if len(doc.Cases) == 0 {
		return Table[Case]{}, errors.New("no cases defined")
	}
	seen := make(map[string]struct{}, len(doc.Cases))
	items := make([]Case, 0, len(doc.Cases))
	for i, raw := range doc.Cases {
		item, err := raw.toCase()
		if err != nil {
			return Table[Case]{}, fmt.Errorf("case %d: %w", i, err)
		}
		if _, ok := seen[item.ID]; ok {
			return Table[Case]{}, fmt.Errorf("case %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return newTable(items), nil
}

// ParseScenarios decodes and validates a scenarios document.
func ParseScenarios(data []byte) (ScenarioTable, error) {
	var doc scenariosDocument
	if err := decodeStrict(data, &doc); err != nil {
		return ScenarioTable{}, err
	}
	if len(doc.Scenarios) == 0 {
		return ScenarioTable{}, errors.New("no scenarios defined")
	}
	seen := make(map[string]struct{}, len(doc.Scenarios))
	items := make([]Scenario, 0, len(doc.Scenarios))
	for i, raw := range doc.Scenarios {
		item, err := raw.toScenario()
		if err != nil {
			return ScenarioTable{}, fmt.Errorf("scenario %d: %w", i, err)
		}
		if _, ok := seen[item.ID]; ok {
			return ScenarioTable{}, fmt.Errorf("scenario %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return ScenarioTable{Table: newTable(items)}, nil
}

func (d caseDocument) toCase() (Case, error) {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return Case{}, errors.New("id is required")
	}
	if err := requireText(d.Title, "title"); err != nil {
		return Case{}, err
	}
	signals, err := normalizeSignals(d.Signals)
	if err != nil {
		return Case{}, err
	}
	verdict, err := decision.ParseChoice(d.Decision.Verdict)
	if err != nil {
		return Case{}, fmt.Errorf("decision: %w", err)
	}
	rationale := normalizeLines(d.Rationale)
	if len(rationale) == 0 {
		return Case{}, errors.New("rationale is required")
	}
	return Case{
		ID:        id,
		Category:  strings.TrimSpace(d.Category),
		Title:     strings.TrimSpace(d.Title),
		Context:   strings.TrimSpace(d.Context),
		Signals:   signals,
		Outcome:   decision.Outcome{Verdict: verdict, Qualifier: strings.TrimSpace(d.Decision.Qualifier)},
		Rationale: rationale,
	}, nil
}

func (d scenarioDocument) toScenario() (Scenario, error) {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return Scenario{}, errors.New("id is required")
	}
	if err := requireText(d.Title, "title"); err != nil {
		return Scenario{}, err
	}
	if err := requireText(d.Justification, "justification"); err != nil {
		return Scenario{}, err
	}
	signals, err := normalizeSignals(d.Signals)
	if err != nil {
		return Scenario{}, err
	}
	preferred, err := decision.ParseChoice(d.Preferred)
	if err != nil {
		return Scenario{}, fmt.Errorf("preferred: %w", err)
	}
	reasoning := make(map[decision.Choice]string, len(d.Reasoning))
	for rawChoice, text := range d.Reasoning {
		choice, err := decision.ParseChoice(rawChoice)
		if err != nil {
			return Scenario{}, fmt.Errorf("reasoning: %w", err)
		}
		if err := requireText(text, "reasoning "+choice.String()); err != nil {
			return Scenario{}, err
		}
		reasoning[choice] = strings.TrimSpace(text)
	}
	for _, choice := range decision.Choices() {
		if _, ok := reasoning[choice]; !ok {
			return Scenario{}, fmt.Errorf("reasoning for %s is required", choice)
		}
	}
	return Scenario{
		ID:            id,
		Category:      strings.TrimSpace(d.Category),
		Title:         strings.TrimSpace(d.Title),
		Context:       strings.TrimSpace(d.Context),
		Signals:       signals,
		Reasoning:     reasoning,
		Preferred:     preferred,
		Justification: strings.TrimSpace(d.Justification),
	}, nil
}

func decodeStrict(data []byte, target any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("document is empty")
		}
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

func requireText(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func normalizeSignals(raw []string) ([]string, error) {
	signals := normalizeLines(raw)
	if len(signals) != len(raw) {
		return nil, errors.New("signals cannot be blank")
	}
	if len(signals) < minSignals || len(signals) > maxSignals {
		return nil, fmt.Errorf("signals: got %d, want %d to %d", len(signals), minSignals, maxSignals)
	}
	return signals, nil
}

func normalizeLines(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mustLoadEmbedded() (Table[Case], ScenarioTable) {
	cases, scenarios, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(err)
	}
	return cases, scenarios
}
