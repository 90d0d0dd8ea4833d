// Package catalog supplies the demo content for the field guide: habitat
// sections for the disclosure group and places for the filtered list. The
// data ships embedded in the binary and is validated at load time, since a
// bad catalog is a build-content bug and should fail fast rather than
// render inconsistently.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed data.toml
var rawData []byte

// Section is one expandable block of the guide.
type Section struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Place is one searchable entry of the explorer list.
type Place struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Region string `toml:"region"`
	Blurb  string `toml:"blurb"`
}

// String is the text the free-text filter matches against.
func (p Place) String() string {
	return fmt.Sprintf("%s %s %s", p.Name, p.Region, p.Blurb)
}

// Catalog is the full demo data set.
type Catalog struct {
	Sections []Section `toml:"section"`
	Places   []Place   `toml:"place"`
}

// ValidationError reports a content contract violation found at load time.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(rawData)
}

// Parse decodes TOML catalog data and validates it: every section and place
// needs a non-empty id unique within its kind, because section ids key the
// disclosure group's open state and place ids key rendered rows.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	sectionIDs := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return ValidationError{Field: fmt.Sprintf("section[%d].id", i), Message: "must not be empty"}
		}
		if sectionIDs[s.ID] {
			return ValidationError{Field: fmt.Sprintf("section[%d].id", i), Message: fmt.Sprintf("duplicate id %q", s.ID)}
		}
		sectionIDs[s.ID] = true
		if s.Title == "" {
			return ValidationError{Field: fmt.Sprintf("section[%d].title", i), Message: "must not be empty"}
		}
	}

	placeIDs := make(map[string]bool, len(c.Places))
	for i, p := range c.Places {
		if p.ID == "" {
			return ValidationError{Field: fmt.Sprintf("place[%d].id", i), Message: "must not be empty"}
		}
		if placeIDs[p.ID] {
			return ValidationError{Field: fmt.Sprintf("place[%d].id", i), Message: fmt.Sprintf("duplicate id %q", p.ID)}
		}
		placeIDs[p.ID] = true
		if p.Name == "" {
			return ValidationError{Field: fmt.Sprintf("place[%d].name", i), Message: "must not be empty"}
		}
	}
	return nil
}
