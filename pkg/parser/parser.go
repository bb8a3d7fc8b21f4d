package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/extrato/pkg/models"
)

type FileType string

const (
	XLSX FileType = "xlsx"
	XLS  FileType = "xls"
	CSV  FileType = "csv"
)

// maxRows bounds how many rows are read from legacy .xls workbooks.
const maxRows = 100000

type Parser struct {
	logger  *log.Logger
	columns Columns
}

func New(logger *log.Logger, columns Columns) *Parser {
	return &Parser{
		logger:  logger,
		columns: columns.withDefaults(),
	}
}

// LoadFile reads the operations spreadsheet at path into a table.
func (p *Parser) LoadFile(path string) (*models.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open operations file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read operations file: %w", err)
	}

	table, err := p.ProcessBytes(data, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	p.logger.Info("loaded operations", "count", table.Len(), "file", path)
	return table, nil
}

// ProcessBytes parses spreadsheet contents; the format is picked from the filename.
func (p *Parser) ProcessBytes(data []byte, filename string) (*models.Table, error) {
	fileType := detectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)

	var (
		sh  sheet
		err error
	)
	switch fileType {
	case XLSX:
		sh, err = readXLSX(data)
	case XLS:
		sh, err = readXLS(data)
	case CSV:
		sh, err = readCSV(data)
	default:
		return nil, fmt.Errorf("unknown file type: %s", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return p.buildTable(sh)
}

func detectType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return XLSX
	case ".xls":
		return XLS
	case ".csv":
		return CSV
	}
	return ""
}
