package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Source reads tables from files.
//
// SheetNames lists the sheets of a file in workbook order; Load reads one
// sheet into a [Table].
type Source interface {
	SheetNames(path string) ([]string, error)
	Load(path, sheet string) (*Table, error)
}

// ExcelSource reads .xlsx workbooks.
type ExcelSource struct{}

// SheetNames returns the workbook's sheet names.
func (ExcelSource) SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// Load reads sheet into a table. Cell values are the formatted text excelize
// shows for each cell.
func (ExcelSource) Load(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: err}
	}
	defer f.Close()

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: err}
	}
	t, err := fromRecords(records)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: err}
	}
	return t, nil
}

// CSVSource reads comma-separated files as a single sheet named after the
// file without its extension.
type CSVSource struct{}

// SheetNames returns the single sheet name of a CSV file.
func (CSVSource) SheetNames(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return []string{csvSheetName(path)}, nil
}

// Load reads the CSV file. sheet must be empty or the file's sheet name.
func (CSVSource) Load(path, sheet string) (*Table, error) {
	if sheet != "" && sheet != csvSheetName(path) {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: fmt.Errorf("no such sheet")}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: err}
	}
	defer f.Close()

	t, err := readCSV(f)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: err}
	}
	return t, nil
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return fromRecords(records)
}

func csvSheetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SourceFor picks the source matching the file extension.
func SourceFor(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return ExcelSource{}, nil
	case ".csv":
		return CSVSource{}, nil
	}
	return nil, &LoadError{Path: path, Err: fmt.Errorf("unsupported file type %q", filepath.Ext(path))}
}

// Open loads sheet from path, choosing the source by extension. An empty
// sheet selects the first sheet of the file.
func Open(path, sheet string) (*Table, string, error) {
	src, err := SourceFor(path)
	if err != nil {
		return nil, "", err
	}
	if sheet == "" {
		names, err := src.SheetNames(path)
		if err != nil {
			return nil, "", err
		}
		if len(names) == 0 {
			return nil, "", &LoadError{Path: path, Err: fmt.Errorf("file has no sheets")}
		}
		sheet = names[0]
	}
	t, err := src.Load(path, sheet)
	if err != nil {
		return nil, "", err
	}
	return t, sheet, nil
}
