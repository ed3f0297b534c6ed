package excel

// FileType is the on-disk format of a table
type FileType string

const (
	FileTypeTSV  FileType = "tsv"
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
)

// TableData represents a delimited or spreadsheet table as raw strings
type TableData struct {
	Headers []string   // Column headers
	Rows    [][]string // Data rows, each padded to len(Headers)
}
