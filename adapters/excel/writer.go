package excel

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// resultsSheet is the sheet name used for xlsx output
const resultsSheet = "results"

// WriteTable writes header and records to path. The format follows the
// extension as in NewDataReader.
func WriteTable(path string, header []string, records [][]string) error {
	name := strings.ToLower(path)
	compressed := strings.HasSuffix(name, ".gz")
	fileType := DetectFileType(strings.TrimSuffix(name, ".gz"))

	if fileType == FileTypeXLSX {
		return writeExcel(path, header, records)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	var dst io.Writer = file
	var gz *gzip.Writer
	if compressed {
		gz = gzip.NewWriter(file)
		dst = gz
	}
	if err := WriteDelimited(dst, fileType, header, records); err != nil {
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
	}
	log.Printf("[DataWriter] wrote %d rows to %s", len(records), path)
	return nil
}

// WriteDelimited writes a CSV or TSV table to w
func WriteDelimited(w io.Writer, fileType FileType, header []string, records [][]string) error {
	writer := csv.NewWriter(w)
	if fileType != FileTypeCSV {
		writer.Comma = '\t'
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

func writeExcel(path string, header []string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, row := range append([][]string{header}, records...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	log.Printf("[DataWriter] wrote %d rows to %s", len(records), path)
	return nil
}
