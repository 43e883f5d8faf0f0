package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/phrazzld/arcana-api/internal/domain"
)

// embeddedDocument decodes the embedded meanings file into a mutable
// document so tests can corrupt individual fields.
func embeddedDocument(t *testing.T) document {
	t.Helper()

	var doc document
	require.NoError(t, json.Unmarshal(embeddedMeanings, &doc))
	require.Len(t, doc.MajorArcana, domain.ArcanaCount)
	return doc
}

// writeTempFile writes data to a file with the given name inside a
// test-scoped temporary directory and returns its full path.
func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadFileJSON(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "meanings.json", embeddedMeanings)

	cat, err := LoadFile(path)
	require.NoError(t, err)

	assert.True(t, cat.Ready())
	assert.Equal(t, domain.ArcanaCount, cat.Size())
	assert.Equal(t, path, cat.Source())
}

func TestLoadFileYAML(t *testing.T) {
	t.Parallel()

	doc := embeddedDocument(t)
	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	path := writeTempFile(t, "meanings.yaml", data)

	cat, err := LoadFile(path)
	require.NoError(t, err)
	require.True(t, cat.Ready())

	embedded, err := Load()
	require.NoError(t, err)

	// The YAML round trip must preserve the meanings exactly
	want, err := embedded.MeaningFor(5, true, domain.PositionFuture)
	require.NoError(t, err)
	got, err := cat.MeaningFor(5, true, domain.PositionFuture)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "meanings.txt", embeddedMeanings)

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadFileMalformedJSON(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "broken.json", []byte(`{"majorArcana": [`))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileIncompleteDocument(t *testing.T) {
	t.Parallel()

	doc := embeddedDocument(t)
	doc.MajorArcana = doc.MajorArcana[:domain.ArcanaCount-1]
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := writeTempFile(t, "short.json", data)

	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrIncompleteCatalog)
}

func TestLoadFileDuplicateEntries(t *testing.T) {
	t.Parallel()

	doc := embeddedDocument(t)
	doc.MajorArcana[21].ID = 0
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := writeTempFile(t, "duplicate.json", data)

	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestLoadFileInvalidEntry(t *testing.T) {
	t.Parallel()

	doc := embeddedDocument(t)
	doc.MajorArcana[7].Name = ""
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := writeTempFile(t, "unnamed.json", data)

	_, err = LoadFile(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrIncompleteCatalog)
}

func TestLoadFileOutOfRangeID(t *testing.T) {
	t.Parallel()

	doc := embeddedDocument(t)
	doc.MajorArcana[3].ID = 40
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := writeTempFile(t, "outofrange.json", data)

	_, err = LoadFile(path)
	assert.Error(t, err)
}
