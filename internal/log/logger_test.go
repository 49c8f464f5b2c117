package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	return string(data)
}

func TestLogger_WritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	l, err := NewWithConsole(dir, &out, &errOut)
	require.NoError(t, err)

	l.Printf("zalivanje %d\n", 3)
	l.Println("gotovo")
	l.Errorf("save %s failed", "plants")
	l.Filef("only in file")
	require.NoError(t, l.Close())

	assert.Equal(t, "zalivanje 3\ngotovo\n", out.String())
	assert.Contains(t, errOut.String(), "save plants failed")
	assert.NotContains(t, errOut.String(), "only in file")

	content := readLog(t, dir)
	assert.Contains(t, content, "zalivanje 3")
	assert.Contains(t, content, "gotovo")
	assert.Contains(t, content, "save plants failed")
	assert.Regexp(t, `\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] only in file`, content)
}

func TestLogger_AppendsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	for _, msg := range []string{"first", "second"} {
		l, err := NewWithConsole(dir, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)
		l.Filef("%s", msg)
		require.NoError(t, l.Close())
	}

	content := readLog(t, dir)
	assert.Contains(t, content, "first")
	assert.Contains(t, content, "second")
}

func TestInit_GlobalFilef(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	require.NoError(t, Init(dir))
	Filef("persist %s: %v", "zelenko-plants-store", "disk full")
	require.NoError(t, Close())

	assert.Contains(t, readLog(t, dir), "persist zelenko-plants-store: disk full")
	assert.NoError(t, Close(), "closing twice is harmless")
}
