package excel

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"evident/domain/core"
	"evident/domain/diversity"
	"evident/domain/metadata"

	"github.com/xuri/excelize/v2"
)

// typesDirective marks an optional second header row declaring column types
const typesDirective = "#q2:types"

// DataReader handles reading Excel, CSV and TSV files, optionally gzipped
type DataReader struct {
	filePath   string
	fileType   FileType
	compressed bool
}

// NewDataReader creates a new data reader; the type follows the extension
func NewDataReader(filePath string) *DataReader {
	name := strings.ToLower(filePath)
	compressed := strings.HasSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".gz")
	return &DataReader{filePath: filePath, fileType: DetectFileType(name), compressed: compressed}
}

// ReadData reads a header row and data rows
func (r *DataReader) ReadData() (*TableData, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(string(r.fileType)), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case FileTypeXLSX:
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readDelimitedRows()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s file must have at least a header row and one data row", r.fileType)
	}
	return r.processRows(rows), nil
}

// readExcelRows reads the first sheet
func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets: %s", r.filePath)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheets[0], err)
	}
	log.Printf("[DataReader] %s read in %.2fms (%d rows)",
		sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *DataReader) readDelimitedRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file: %w", r.fileType, err)
	}
	defer file.Close()

	var src io.Reader = file
	if r.compressed {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	reader := csv.NewReader(src)
	if r.fileType != FileTypeCSV {
		reader.Comma = '\t'
		reader.LazyQuotes = true
	}
	reader.FieldsPerRecord = -1

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file: %w", r.fileType, err)
	}
	log.Printf("[DataReader] %s file read in %.2fms (%d rows)",
		r.fileType, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// processRows trims cells, pads short rows and drops blank lines
func (r *DataReader) processRows(rows [][]string) *TableData {
	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, len(headers))
		blank := true
		for j := 0; j < len(headers) && j < len(row); j++ {
			cells[j] = strings.TrimSpace(row[j])
			if cells[j] != "" {
				blank = false
			}
		}
		if !blank {
			data = append(data, cells)
		}
	}
	return &TableData{Headers: headers, Rows: data}
}

// ReadMetadata loads sample metadata. The first column holds sample IDs.
// Column types come from a "#q2:types" row when present (categorical or
// numeric), otherwise they are inferred from the values.
func ReadMetadata(path string) (*metadata.Table, error) {
	data, err := NewDataReader(path).ReadData()
	if err != nil {
		return nil, err
	}
	if len(data.Headers) < 2 {
		return nil, fmt.Errorf("%w: metadata needs a sample ID column and at least one covariate", core.ErrInvalidData)
	}

	var declared []string
	rows := data.Rows
	if len(rows) > 0 && strings.EqualFold(rows[0][0], typesDirective) {
		declared = rows[0]
		rows = rows[1:]
	}
	rows = dropComments(rows)

	ids := make([]core.SampleID, len(rows))
	for i, row := range rows {
		ids[i] = row[0]
	}
	table, err := metadata.NewTable(ids)
	if err != nil {
		return nil, err
	}

	for j, name := range data.Headers[1:] {
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = row[j+1]
		}
		kind := metadata.InferKind(values)
		if declared != nil {
			switch strings.ToLower(declared[j+1]) {
			case "categorical":
				kind = metadata.KindCategorical
			case "numeric":
				if kind == metadata.KindCategorical {
					return nil, fmt.Errorf("%w: column %q is declared numeric", core.ErrInvalidData, name)
				}
			}
		}
		if err := table.AddColumn(name, kind, values); err != nil {
			return nil, err
		}
	}

	log.Printf("[DataReader] metadata: %d samples, %d columns", table.Len(), len(table.Columns()))
	return table, nil
}

// ReadAlphaDiversity loads a two-column (sample ID, value) table
func ReadAlphaDiversity(path string) (*diversity.Vector, error) {
	data, err := NewDataReader(path).ReadData()
	if err != nil {
		return nil, err
	}
	if len(data.Headers) != 2 {
		return nil, fmt.Errorf("%w: alpha diversity must have 2 columns, found %d", core.ErrInvalidData, len(data.Headers))
	}

	rows := dropComments(data.Rows)
	ids := make([]core.SampleID, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		ids[i] = row[0]
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %q value %q is not numeric", core.ErrInvalidData, row[0], row[1])
		}
		values[i] = v
	}
	return diversity.NewVector(ids, values)
}

// ReadDistanceMatrix loads a labeled square matrix (lsmat): a header of
// sample IDs, then one row per sample starting with its ID.
func ReadDistanceMatrix(path string) (*diversity.DistanceMatrix, error) {
	data, err := NewDataReader(path).ReadData()
	if err != nil {
		return nil, err
	}

	ids := data.Headers[1:]
	if len(data.Rows) != len(ids) {
		return nil, fmt.Errorf("%w: %d column IDs for %d rows", core.ErrInvalidData, len(ids), len(data.Rows))
	}

	matrix := make([][]float64, len(data.Rows))
	for i, row := range data.Rows {
		if row[0] != ids[i] {
			return nil, fmt.Errorf("%w: row %d is %q, column is %q", core.ErrInvalidData, i, row[0], ids[i])
		}
		matrix[i] = make([]float64, len(ids))
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: distance (%q, %q) %q is not numeric", core.ErrInvalidData, row[0], ids[j], cell)
			}
			matrix[i][j] = v
		}
	}
	return diversity.NewDistanceMatrix(ids, matrix)
}

// dropComments removes rows whose first cell starts with '#'
func dropComments(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		if strings.HasPrefix(row[0], "#") {
			continue
		}
		out = append(out, row)
	}
	return out
}

// DetectFileType maps an extension to a file type; unknown types are TSV
func DetectFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FileTypeXLSX
	case ".csv":
		return FileTypeCSV
	default:
		return FileTypeTSV
	}
}
