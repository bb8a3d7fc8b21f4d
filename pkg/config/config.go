package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/itchyny/timefmt-go"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yurifrl/extrato/pkg/parser"
)

const (
	DefaultRatesURL  = "https://api.exchangerate-api.com/v4/latest/RUB"
	DefaultStocksURL = "https://www.alphavantage.co/query"
)

// Settings is the user configuration for one run. It is passed explicitly to
// every component that needs it.
type Settings struct {
	LogFile        string   `mapstructure:"log_file"`
	LogLevel       string   `mapstructure:"log_level"`
	OperationsFile string   `mapstructure:"operations_file"`
	DateFormat     string   `mapstructure:"date_format"`
	UserCurrencies []string `mapstructure:"user_currencies"`
	UserStocks     []string `mapstructure:"user_stocks"`

	ReportsDir     string         `mapstructure:"reports_dir"`
	ReportCategory string         `mapstructure:"report_category"`
	RatesURL       string         `mapstructure:"rates_url"`
	StocksURL      string         `mapstructure:"stocks_url"`
	StockAPIKeyEnv string         `mapstructure:"stock_api_key_env"`
	HTTPTimeout    time.Duration  `mapstructure:"http_timeout"`
	Columns        parser.Columns `mapstructure:"columns"`
}

// flagKeys maps command-line flags onto settings keys.
var flagKeys = map[string]string{
	"operations": "operations_file",
	"log-level":  "log_level",
	"log-file":   "log_file",
	"reports":    "reports_dir",
	"category":   "report_category",
}

// Build loads settings from cfgFile (or user_settings.* in the working
// directory and ~/.config/extrato), EXTRATO_* environment variables and flags,
// in increasing order of precedence.
func Build(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("operations_file", "")
	v.SetDefault("user_currencies", []string{})
	v.SetDefault("user_stocks", []string{})
	v.SetDefault("date_format", "%Y-%m-%d %H:%M:%S")
	v.SetDefault("reports_dir", "reports")
	v.SetDefault("report_category", "Супермаркеты")
	v.SetDefault("rates_url", DefaultRatesURL)
	v.SetDefault("stocks_url", DefaultStocksURL)
	v.SetDefault("stock_api_key_env", "STOCK_API_KEY")
	v.SetDefault("http_timeout", "0s")
	cols := parser.DefaultColumns()
	v.SetDefault("columns.date", cols.Date)
	v.SetDefault("columns.amount", cols.Amount)
	v.SetDefault("columns.category", cols.Category)
	v.SetDefault("columns.description", cols.Description)
	v.SetDefault("columns.card", cols.Card)
	v.SetDefault("columns.cashback", cols.Cashback)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("user_settings")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "extrato"))
		}
	}

	v.SetEnvPrefix("EXTRATO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every problem with the settings at once.
func (s *Settings) Validate() error {
	var problems []string

	if s.OperationsFile == "" {
		problems = append(problems, "operations_file is required")
	}
	if s.DateFormat == "" {
		problems = append(problems, "date_format is required")
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log_level %q", s.LogLevel))
	}
	if s.HTTPTimeout < 0 {
		problems = append(problems, "http_timeout must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid settings:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// FormatInstant writes t in date_format.
func (s *Settings) FormatInstant(t time.Time) string {
	return timefmt.Format(t, s.DateFormat)
}

// ParseInstant parses a reference instant written in date_format. Like the
// operation dates it is read as wall-clock time in UTC.
func (s *Settings) ParseInstant(value string) (time.Time, error) {
	t, err := timefmt.ParseInLocation(value, s.DateFormat, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime %q does not match %q: %w", value, s.DateFormat, err)
	}
	return t, nil
}

// StockAPIKey reads the quote API key from the environment.
func (s *Settings) StockAPIKey() string {
	return os.Getenv(s.StockAPIKeyEnv)
}
