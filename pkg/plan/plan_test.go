package plan

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writePlan(t, `
at: "2024-01-31 12:00:00"
reports:
  - category: Супермаркеты
    file: groceries.json
  - category: Рестораны
    file: dining.yaml
    at: "2024-02-15 00:00:00"
`)

	p, err := Load(path)
	require.NoError(t, err)
	require.Len(t, p.Reports, 2)
	assert.Equal(t, "Супермаркеты", p.Reports[0].Category)
	assert.Equal(t, "2024-01-31 12:00:00", p.InstantFor(p.Reports[0]))
	assert.Equal(t, "2024-02-15 00:00:00", p.InstantFor(p.Reports[1]))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writePlan(t, "reports: [\n"))
	assert.ErrorContains(t, err, "failed to parse yaml")

	_, err = Load(writePlan(t, "at: now\n"))
	assert.ErrorContains(t, err, "no reports")

	_, err = Load(writePlan(t, "reports:\n  - file: x.json\n"))
	assert.ErrorContains(t, err, "report 1: category is required")
}

func TestPrint(t *testing.T) {
	p := &Plan{Reports: []Report{{Category: "Транспорт"}, {Category: "Рестораны", File: "r.csv", At: "2024-01-01 00:00:00"}}}

	var buf bytes.Buffer
	p.Print(&buf)

	assert.Equal(t, "Reports at: now\n"+
		"[1] category=Транспорт file=(default) at=\n"+
		"[2] category=Рестораны file=r.csv at=2024-01-01 00:00:00\n", buf.String())
}
