package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600))
	}
	return dir
}

func soundContent() map[string]string {
	return map[string]string{
		"services.json":     `{"services": []}`,
		"testimonials.json": `{"testimonials": [{"id": "1", "name": "Sarah", "event": "Mariage", "rating": 5, "comment": "Parfait", "visible": true}, {"id": "2"}]}`,
		"references.json":   `{"references": []}`,
		"news.json":         `{"news": []}`,
		"availability.json": `{"availability": []}`,
		"booked-dates.json": `{"bookedDates": []}`,
		"content.json":      `{"hero": {}, "about": {}, "contact": {}, "footer": {}}`,
	}
}

func TestContentCheck_EmbeddedDefaults(t *testing.T) {
	t.Parallel()

	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "RESOURCE")
	for _, name := range []string{"services", "testimonials", "references", "news", "availability", "booked-dates", "content"} {
		assert.Contains(t, out, name)
	}
}

func TestContentCheck_DroppedEntitiesPassUnlessStrict(t *testing.T) {
	t.Parallel()

	dir := writeContent(t, soundContent())

	out, err := execute(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (1 dropped)")

	_, err = execute(t, "--strict", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 entities rejected")
}

func TestContentCheck_StructuralProblemsFail(t *testing.T) {
	t.Parallel()

	files := soundContent()
	files["news.json"] = `{"news": [`
	delete(files, "references.json")
	files["content.json"] = `{"hero": {}}`
	dir := writeContent(t, files)

	out, err := execute(t, dir)

	require.ErrorIs(t, err, errStructure)
	lines := strings.Split(out, "\n")
	var statuses []string
	for _, l := range lines {
		if strings.HasPrefix(l, "news ") || strings.HasPrefix(l, "references ") || strings.HasPrefix(l, "content ") {
			statuses = append(statuses, strings.TrimSpace(l[strings.LastIndex(l, "  "):]))
		}
	}
	assert.ElementsMatch(t, []string{"unavailable", "unavailable", "invalid"}, statuses)
	assert.Contains(t, out, `content: section "footer" missing or not an object`)
}

func TestContentCheck_BadDirectory(t *testing.T) {
	t.Parallel()

	_, err := execute(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "err = %v", err)

	file := filepath.Join(t.TempDir(), "services.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o600))
	_, err = execute(t, file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestContentCheck_TooManyArgs(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "a", "b")
	require.Error(t, err)
}
