// Package catalog loads and serves the interpretation text for the Major
// Arcana: keywords, general meanings, and position-aware meanings for both
// orientations of all 22 cards. A default meanings document ships embedded
// in the binary; an external JSON or YAML file can replace it at startup.
package catalog
