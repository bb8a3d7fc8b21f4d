package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurifrl/extrato/pkg/insights"
	"github.com/yurifrl/extrato/pkg/logger"
	"gopkg.in/yaml.v3"
)

func sampleRows() []insights.ReportRow {
	return []insights.ReportRow{
		{
			{Name: "Дата операции", Value: "15.01.2024"},
			{Name: "Сумма платежа", Value: insights.Number("-20.5")},
			{Name: "Кэшбэк", Value: nil},
			{Name: "Описание", Value: "Пятёрочка"},
		},
		{
			{Name: "Дата операции", Value: "01.03.2024"},
			{Name: "Сумма платежа", Value: insights.Number("-30")},
			{Name: "Кэшбэк", Value: insights.Number("1")},
			{Name: "Описание", Value: "Лента & Co"},
		},
	}
}

func TestPersistJSONRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w := NewWriter(dir, logger.Discard())

	path, err := w.Persist(sampleRows(), "food.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "food.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Пятёрочка")
	assert.Contains(t, string(data), "Лента & Co")
	assert.Contains(t, string(data), "\n  {\n    \"Дата операции\"")

	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []map[string]any{
		{"Дата операции": "15.01.2024", "Сумма платежа": -20.5, "Кэшбэк": nil, "Описание": "Пятёрочка"},
		{"Дата операции": "01.03.2024", "Сумма платежа": -30.0, "Кэшбэк": 1.0, "Описание": "Лента & Co"},
	}, got)
}

func TestPersistDefaultName(t *testing.T) {
	w := NewWriter(t.TempDir(), logger.Discard())
	w.now = func() time.Time { return time.Date(2024, 4, 15, 9, 5, 7, 0, time.UTC) }

	path, err := w.Persist(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "report_20240415_090507.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestPersistYAML(t *testing.T) {
	w := NewWriter(t.TempDir(), logger.Discard())

	path, err := w.Persist(sampleRows(), "food.yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, -20.5, got[0]["Сумма платежа"])
	assert.Nil(t, got[0]["Кэшбэк"])
	assert.Equal(t, 1, got[1]["Кэшбэк"])
	assert.Equal(t, "Пятёрочка", got[0]["Описание"])
}

func TestPersistCSV(t *testing.T) {
	w := NewWriter(t.TempDir(), logger.Discard())

	path, err := w.Persist(sampleRows(), "food.csv")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Дата операции,Сумма платежа,Кэшбэк,Описание\n15.01.2024,-20.5,,Пятёрочка\n01.03.2024,-30,1,Лента & Co\n", string(data))
}

func TestSave(t *testing.T) {
	w := NewWriter(t.TempDir(), logger.Discard())

	got := w.Save(sampleRows(), "food.json")

	require.True(t, got.IsOk())
	assert.Equal(t, "Отчёт сохранён в файл food.json", got.Value)
}

func TestSaveFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	w := NewWriter(blocker, logger.Discard())

	got := w.Save(sampleRows(), "food.json")

	require.True(t, got.IsError())
	assert.Equal(t, "Произошла ошибка при создании отчёта", got.Message)
	assert.Error(t, got.Err)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, `"Произошла ошибка при создании отчёта"`, string(data))
}
