package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/extrato/pkg/csv"
	"github.com/yurifrl/extrato/pkg/insights"
	"github.com/yurifrl/extrato/pkg/result"
	"gopkg.in/yaml.v3"
)

const (
	savedMessage  = "Отчёт сохранён в файл %s"
	failedMessage = "Произошла ошибка при создании отчёта"
)

// Writer stores category reports under one directory.
type Writer struct {
	dir    string
	logger *log.Logger
	now    func() time.Time
}

func NewWriter(dir string, logger *log.Logger) *Writer {
	return &Writer{dir: dir, logger: logger, now: time.Now}
}

// DefaultName is the file name used when the caller does not pick one.
func DefaultName(at time.Time) string {
	return fmt.Sprintf("report_%s.json", at.Format("20060102_150405"))
}

// Persist writes rows to name inside the reports directory and returns the
// path. The encoding follows the extension: .json (default), .yaml/.yml or .csv.
func (w *Writer) Persist(rows []insights.ReportRow, name string) (path string, err error) {
	if name == "" {
		name = DefaultName(w.now())
	}
	if rows == nil {
		rows = []insights.ReportRow{}
	}

	data, err := encode(rows, name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	path = filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file: %w", cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

// Save persists rows and turns the outcome into a user-facing message. Write
// failures are logged and reported as a failed result, never returned.
func (w *Writer) Save(rows []insights.ReportRow, name string) result.Result[string] {
	path, err := w.Persist(rows, name)
	if err != nil {
		w.logger.Error("error saving report to file", "err", err)
		return result.FailPlain[string](err, failedMessage)
	}
	w.logger.Info("report saved", "path", path, "rows", len(rows))
	return result.Ok(fmt.Sprintf(savedMessage, filepath.Base(path)))
}

func encode(rows []insights.ReportRow, name string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to encode report as yaml: %w", err)
		}
		return data, nil
	case ".csv":
		return csv.Create(rows)
	default:
		var buf strings.Builder
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(rows); err != nil {
			return nil, fmt.Errorf("failed to encode report as json: %w", err)
		}
		return []byte(buf.String()), nil
	}
}
