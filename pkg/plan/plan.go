package plan

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a batch of category reports. Report.At overrides Plan.At; both are
// written in the settings date_format. An empty At means now.
type Plan struct {
	At      string   `yaml:"at"`
	Reports []Report `yaml:"reports"`
}

type Report struct {
	Category string `yaml:"category"`
	File     string `yaml:"file"`
	At       string `yaml:"at"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Reports) == 0 {
		return nil, fmt.Errorf("plan has no reports")
	}
	for i, r := range p.Reports {
		if r.Category == "" {
			return nil, fmt.Errorf("report %d: category is required", i+1)
		}
	}
	return &p, nil
}

// InstantFor returns the reference instant string for report r.
func (p *Plan) InstantFor(r Report) string {
	if r.At != "" {
		return r.At
	}
	return p.At
}

func (p *Plan) Print(w io.Writer) {
	at := p.At
	if at == "" {
		at = "now"
	}
	fmt.Fprintf(w, "Reports at: %s\n", at)
	for i, r := range p.Reports {
		file := r.File
		if file == "" {
			file = "(default)"
		}
		fmt.Fprintf(w, "[%d] category=%s file=%s at=%s\n", i+1, r.Category, file, p.InstantFor(r))
	}
}
