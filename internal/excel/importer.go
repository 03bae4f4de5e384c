package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportConfig maps spreadsheet columns to word fields. Columns are Excel
// letters for .xlsx files; for .csv the same letters are interpreted as
// zero-based positions (A=0, B=1, ...).
type ImportConfig struct {
	SheetName        string
	WordColumn       string
	DefinitionColumn string
	SynonymsColumn   string
	AntonymsColumn   string
	ExampleColumn    string
	StartRow         int
}

func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName:        "Sheet1",
		WordColumn:       "A",
		DefinitionColumn: "B",
		SynonymsColumn:   "C",
		AntonymsColumn:   "D",
		ExampleColumn:    "E",
		StartRow:         2, // row 1 is the header
	}
}

// ParsedWord is one row of an import file after trimming and validation.
type ParsedWord struct {
	Text            string
	Definition      string
	Synonyms        string
	Antonyms        string
	ExampleSentence string
	Row             int
}

// ParseFile reads an .xlsx or .csv word list. Rows with an empty word cell
// are reported as row errors rather than aborting the whole import.
func ParseFile(path string, cfg ImportConfig) ([]ParsedWord, []string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return parseXLSX(path, cfg)
	case ".csv":
		return parseCSV(path, cfg)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

func parseXLSX(path string, cfg ImportConfig) ([]ParsedWord, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", cfg.SheetName, err)
	}

	var (
		words     []ParsedWord
		rowErrors []string
	)
	for i := cfg.StartRow - 1; i < len(rows); i++ {
		rowNum := i + 1
		word, err := rowToWord(rows[i], cfg, rowNum)
		if err != nil {
			rowErrors = append(rowErrors, err.Error())
			continue
		}
		if word == nil {
			continue // fully blank row
		}
		words = append(words, *word)
	}
	return words, rowErrors, nil
}

func parseCSV(path string, cfg ImportConfig) ([]ParsedWord, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var (
		words     []ParsedWord
		rowErrors []string
	)
	rowNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv: %w", err)
		}
		rowNum++
		if rowNum < cfg.StartRow {
			continue
		}
		word, werr := rowToWord(record, cfg, rowNum)
		if werr != nil {
			rowErrors = append(rowErrors, werr.Error())
			continue
		}
		if word == nil {
			continue
		}
		words = append(words, *word)
	}
	return words, rowErrors, nil
}

func rowToWord(row []string, cfg ImportConfig, rowNum int) (*ParsedWord, error) {
	text := cellValue(row, cfg.WordColumn)
	definition := cellValue(row, cfg.DefinitionColumn)
	synonyms := cellValue(row, cfg.SynonymsColumn)
	antonyms := cellValue(row, cfg.AntonymsColumn)
	example := cellValue(row, cfg.ExampleColumn)

	if text == "" {
		if definition == "" && synonyms == "" && antonyms == "" && example == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("row %d: word cell is empty", rowNum)
	}
	return &ParsedWord{
		Text:            text,
		Definition:      definition,
		Synonyms:        synonyms,
		Antonyms:        antonyms,
		ExampleSentence: example,
		Row:             rowNum,
	}, nil
}

func cellValue(row []string, column string) string {
	idx, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return ""
	}
	idx-- // excelize column numbers are 1-based
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
