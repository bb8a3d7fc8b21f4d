package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/yurifrl/extrato/pkg/config"
	"github.com/yurifrl/extrato/pkg/homepage"
	"github.com/yurifrl/extrato/pkg/insights"
	"github.com/yurifrl/extrato/pkg/models"
	"github.com/yurifrl/extrato/pkg/parser"
	"github.com/yurifrl/extrato/pkg/plan"
	"github.com/yurifrl/extrato/pkg/quotes"
	"github.com/yurifrl/extrato/pkg/report"
	"github.com/yurifrl/extrato/pkg/result"
)

const (
	homeTitle     = "Главная страница"
	cashbackTitle = "Анализ кешбэка"
	reportTitle   = "Отчет по категории"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Processor runs the views against the configured operations file.
type Processor struct {
	settings *config.Settings
	logger   *log.Logger
	parser   *parser.Parser
	home     *homepage.Assembler
	writer   *report.Writer
}

// NewProviders builds the HTTP quote clients described by the settings.
func NewProviders(s *config.Settings) (*quotes.RatesClient, *quotes.StocksClient) {
	client := &http.Client{Timeout: s.HTTPTimeout}
	return quotes.NewRatesClient(client, s.RatesURL),
		quotes.NewStocksClient(client, s.StocksURL, s.StockAPIKey())
}

func NewProcessor(s *config.Settings, logger *log.Logger, rates quotes.RateProvider, stocks quotes.StockProvider) *Processor {
	return &Processor{
		settings: s,
		logger:   logger,
		parser:   parser.New(logger, s.Columns),
		home:     homepage.New(logger, rates, stocks, s.UserCurrencies, s.UserStocks),
		writer:   report.NewWriter(s.ReportsDir, logger),
	}
}

// Load reads the operations file. Every call reads it again.
func (p *Processor) Load() (*models.Table, error) {
	return p.parser.LoadFile(p.settings.OperationsFile)
}

// Parse reads an uploaded operations spreadsheet.
func (p *Processor) Parse(data []byte, filename string) (*models.Table, error) {
	return p.parser.ProcessBytes(data, filename)
}

// ReportsDir is where category reports are written.
func (p *Processor) ReportsDir() string {
	return p.settings.ReportsDir
}

func (p *Processor) Home(ctx context.Context, table *models.Table, at time.Time) result.Result[homepage.Page] {
	return p.home.Build(ctx, table, at)
}

// Cashback analyses the month of at over the rows that carry a cashback value.
func (p *Processor) Cashback(table *models.Table, at time.Time) (result.Result[insights.CategoryCashback], error) {
	return insights.CashbackCategories(p.logger, at.Year(), at.Month(), table.WithCashback())
}

// CategoryReport builds and saves the spending report of category. The window
// ends at midnight of at's day.
func (p *Processor) CategoryReport(table *models.Table, category, file string, at time.Time) result.Result[string] {
	rows := insights.SpendingByCategory(table, category, dayStart(at))
	p.logger.Debug("category report", "category", category, "rows", len(rows))
	return p.writer.Save(rows, file)
}

// Run prints the home page, the cashback analysis and the configured category
// report for at. It stops at the first view that cannot be produced.
func (p *Processor) Run(ctx context.Context, w io.Writer, at time.Time) error {
	p.logger.Info("starting application", "at", p.settings.FormatInstant(at))

	table, err := p.Load()
	if err != nil {
		return fmt.Errorf("failed to load operations: %w", err)
	}

	if err := writeSection(w, homeTitle, p.Home(ctx, table, at)); err != nil {
		return err
	}

	cashback, err := p.Cashback(table, at)
	if err != nil {
		return fmt.Errorf("cashback analysis: %w", err)
	}
	if err := writeSection(w, cashbackTitle, cashback); err != nil {
		return err
	}

	saved := p.CategoryReport(table, p.settings.ReportCategory, "", at)
	return writeSection(w, reportTitle, saved)
}

// RunPlan saves every report of pl. Reports without an instant use now.
func (p *Processor) RunPlan(w io.Writer, pl *plan.Plan, now time.Time) error {
	table, err := p.Load()
	if err != nil {
		return fmt.Errorf("failed to load operations: %w", err)
	}

	for i, r := range pl.Reports {
		at := now
		if raw := pl.InstantFor(r); raw != "" {
			if at, err = p.settings.ParseInstant(raw); err != nil {
				return fmt.Errorf("report %d: %w", i+1, err)
			}
		}
		saved := p.CategoryReport(table, r.Category, r.File, at)
		if err := writeSection(w, fmt.Sprintf("%s %s", reportTitle, r.Category), saved); err != nil {
			return err
		}
	}
	return nil
}

func writeSection(w io.Writer, title string, v any) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", titleStyle.Render(title+":")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", title, err)
	}
	return nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
