package catalog

import "errors"

// Catalog-specific errors
var (
	// ErrCardNotFound is returned when no meaning entry exists for the
	// requested arcana number.
	ErrCardNotFound = errors.New("no meaning found for arcana number")

	// ErrUnsupportedFormat is returned when a meanings file has an
	// extension other than .json, .yaml, or .yml.
	ErrUnsupportedFormat = errors.New("unsupported meanings file format")

	// ErrDuplicateEntry is returned when two meaning entries share an id.
	ErrDuplicateEntry = errors.New("duplicate meaning entry")

	// ErrIncompleteCatalog is returned when a meanings document does not
	// define all 22 Major Arcana.
	ErrIncompleteCatalog = errors.New("meanings document must define all 22 Major Arcana")
)
