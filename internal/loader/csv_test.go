package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVBasic(t *testing.T) {
	header, rows, err := ReadCSV(strings.NewReader("a,b\n1,2\n3,4\n"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, header)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, rows)
}

func TestReadCSVTrimSpace(t *testing.T) {
	header, rows, err := ReadCSV(strings.NewReader("a , b\n 1 ,2 \n"), CSVOptions{TrimSpace: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, header)
	assert.Equal(t, [][]string{{"1", "2"}}, rows)
}

func TestReadCSVCustomDelimiter(t *testing.T) {
	header, rows, err := ReadCSV(strings.NewReader("a;b\n1;2\n"), CSVOptions{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, header)
	assert.Equal(t, [][]string{{"1", "2"}}, rows)
}

func TestReadCSVComments(t *testing.T) {
	_, rows, err := ReadCSV(strings.NewReader("a,b\n# skip me\n1,2\n"), CSVOptions{Comment: '#'})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}}, rows)
}

func TestReadCSVVariableFields(t *testing.T) {
	_, rows, err := ReadCSV(strings.NewReader("a,b,c\n1\n1,2,3,4\n"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}, {"1", "2", "3", "4"}}, rows)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	header, rows, err := ReadCSV(strings.NewReader("a,b\n"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, header)
	assert.Empty(t, rows)
}

func TestReadCSVEmpty(t *testing.T) {
	_, _, err := ReadCSV(strings.NewReader(""), CSVOptions{})
	assert.Error(t, err)
}
