package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "commands.csv")
	now := time.Date(2014, 3, 5, 12, 0, 0, 0, time.UTC)

	err := Append(path, []Entry{
		{Timestamp: now, Command: "import", Details: "statement.csv: inserted=2", BatchID: "batch-1"},
		{Timestamp: now.Add(time.Minute), Command: "add store", Details: "ALDI -> food"},
	})
	require.NoError(t, err)

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "import", entries[0].Command)
	assert.Equal(t, "batch-1", entries[0].BatchID)
	assert.True(t, entries[0].Timestamp.Equal(now))
	assert.Equal(t, "add store", entries[1].Command)
	assert.Empty(t, entries[1].BatchID)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.csv")
	now := time.Now().UTC()

	require.NoError(t, Append(path, []Entry{{Timestamp: now, Command: "a"}}))
	require.NoError(t, Append(path, []Entry{{Timestamp: now, Command: "b"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,command"))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"notatime", "import", "", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	assert.Error(t, err)
}
