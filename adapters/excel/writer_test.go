package excel

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleHeader  = []string{"sample_id", "faith_pd"}
	sampleRecords = [][]string{{"a", "1.5"}, {"b", "2.25"}, {"c", "3"}}
)

func TestWriteTable_RoundTrip(t *testing.T) {
	for _, name := range []string{"out.tsv", "out.csv", "out.tsv.gz", "out.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteTable(path, sampleHeader, sampleRecords))

			data, err := NewDataReader(path).ReadData()
			require.NoError(t, err)
			assert.Equal(t, sampleHeader, data.Headers)
			assert.Equal(t, sampleRecords, data.Rows)

			vector, err := ReadAlphaDiversity(path)
			require.NoError(t, err)
			assert.Equal(t, []float64{1.5, 2.25, 3}, vector.Values())
		})
	}
}

func TestWriteDelimited(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, FileTypeTSV, sampleHeader, sampleRecords[:1]))
	assert.Equal(t, "sample_id\tfaith_pd\na\t1.5\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteDelimited(&buf, FileTypeCSV, sampleHeader, sampleRecords[:1]))
	assert.Equal(t, "sample_id,faith_pd\na,1.5\n", buf.String())
}
