package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/phrazzld/arcana-api/internal/domain"
)

// embeddedMeanings is the default meanings document compiled into the
// binary.
//
//go:embed data/card_meanings.json
var embeddedMeanings []byte

// validate is the shared validator for meanings documents.
var validate = validator.New()

// document is the top-level shape of a meanings file.
type document struct {
	MajorArcana []Entry `json:"majorArcana" yaml:"majorArcana" validate:"required,dive"`
}

type fileFormat int

const (
	formatJSON fileFormat = iota
	formatYAML
)

// Load builds a Catalog from the embedded meanings document.
func Load() (*Catalog, error) {
	catalog, err := parse(embeddedMeanings, formatJSON)
	if err != nil {
		return nil, fmt.Errorf("loading embedded card meanings: %w", err)
	}
	catalog.source = "embedded"
	return catalog, nil
}

// LoadFile builds a Catalog from an external meanings file. The format is
// chosen by extension: .json, .yaml, or .yml.
func LoadFile(path string) (*Catalog, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card meanings from %s: %w", path, err)
	}

	catalog, err := parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading card meanings from %s: %w", path, err)
	}
	catalog.source = path
	return catalog, nil
}

func formatForPath(path string) (fileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// parse decodes, validates, and indexes a meanings document. Every entry
// must validate, ids must be unique, and the document must cover the full
// Major Arcana.
func parse(data []byte, format fileFormat) (*Catalog, error) {
	var doc document
	switch format {
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("validating meanings document: %w", err)
	}

	entries := make(map[int]Entry, len(doc.MajorArcana))
	for _, entry := range doc.MajorArcana {
		if _, exists := entries[entry.ID]; exists {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateEntry, entry.ID)
		}
		entries[entry.ID] = entry
	}

	// Unique ids in [0,21] make a count check sufficient for completeness.
	if len(entries) != domain.ArcanaCount {
		return nil, fmt.Errorf("%w: got %d", ErrIncompleteCatalog, len(entries))
	}

	return &Catalog{entries: entries}, nil
}
