package family

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidName is returned when a Definition has a name that produces an empty identifier.
var ErrInvalidName = errors.New("invalid block name")

// DefaultCategory is the category used for the identifier of a Definition without categories.
const DefaultCategory = "engine"

// Definition is the base block of a Family: the block in its default orientation together with the name and
// categories it was defined with.
type Definition[B any] struct {
	// Name is the name of the block, such as "Lamp".
	Name string
	// Categories are the categories the block belongs to. The first category is used as the namespace of the
	// family identifier.
	Categories []string
	// Base is the block in its default orientation. Every variant of the family is a rotated copy of Base.
	Base B
}

// ID derives the identifier of the family created from d. The identifier is of the form category:name, both folded
// to lower case with whitespace replaced by underscores.
func (d Definition[B]) ID() (ID, error) {
	name := normaliseIdentifier(d.Name)
	if name == "" {
		return "", fmt.Errorf("derive family id: %w: %q", ErrInvalidName, d.Name)
	}
	category := DefaultCategory
	if len(d.Categories) > 0 {
		if c := normaliseIdentifier(d.Categories[0]); c != "" {
			category = c
		}
	}
	return ID(category + ":" + name), nil
}

// ID is the stable identifier of a Family, such as tutorial:lamp.
type ID string

// Hash returns a 64-bit hash of the identifier. It is stable across processes and may be used by hosts that key
// blocks by integers.
func (id ID) Hash() uint64 {
	return xxhash.Sum64String(string(id))
}

// Namespace returns the part of the identifier before the colon.
func (id ID) Namespace() string {
	ns, _, _ := strings.Cut(string(id), ":")
	return ns
}

// String ...
func (id ID) String() string {
	return string(id)
}

func normaliseIdentifier(s string) string {
	// Casers keep state, so a new one is made for every call.
	fields := strings.FieldsFunc(cases.Lower(language.Und).String(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == ':'
	})
	return strings.Join(fields, "_")
}
