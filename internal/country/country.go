// Package country holds the static reference table of supported countries.
package country

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"

	"github.com/activitymap/activitymap-server/internal/domain"
)

// Entry is a code/name pair used to build a Table. Flags are derived from the code.
type Entry struct {
	Code string
	Name string
}

// Table maps ISO-3166 alpha-2 codes to countries. It is read-only after New.
type Table struct {
	byCode  map[string]domain.Country
	ordered []domain.Country
}

// New builds a table from entries. Every code must be an upper-case ISO-3166
// alpha-2 country code and appear once.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		byCode:  make(map[string]domain.Country, len(entries)),
		ordered: make([]domain.Country, 0, len(entries)),
	}

	for _, e := range entries {
		if err := checkCode(e.Code); err != nil {
			return nil, err
		}
		if _, dup := t.byCode[e.Code]; dup {
			return nil, fmt.Errorf("duplicate country code %q", e.Code)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("country %q has no name", e.Code)
		}

		c := domain.Country{Code: e.Code, Name: e.Name, Flag: Flag(e.Code)}
		t.byCode[e.Code] = c
		t.ordered = append(t.ordered, c)
	}

	return t, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew(entries []Entry) *Table {
	t, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("invalid country table: %v", err))
	}
	return t
}

// Default returns the table of countries supported by the application.
func Default() *Table {
	return MustNew(defaultEntries)
}

// Lookup returns the country for an exact code match.
func (t *Table) Lookup(code string) (domain.Country, bool) {
	c, ok := t.byCode[code]
	return c, ok
}

// All returns the countries sorted by name.
func (t *Table) All() []domain.Country {
	out := slices.Clone(t.ordered)
	slices.SortFunc(out, func(a, b domain.Country) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Len returns the number of countries in the table.
func (t *Table) Len() int {
	return len(t.ordered)
}

// Flag returns the emoji flag for a two-letter code: each letter maps to its
// regional indicator symbol.
func Flag(code string) string {
	if len(code) != 2 {
		return ""
	}
	const regionalA = 0x1F1E6
	runes := make([]rune, 0, 2)
	for i := range 2 {
		ch := code[i]
		if ch < 'A' || ch > 'Z' {
			return ""
		}
		runes = append(runes, rune(regionalA+int(ch-'A')))
	}
	return string(runes)
}

func checkCode(code string) error {
	if len(code) != 2 {
		return fmt.Errorf("country code %q is not alpha-2", code)
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return fmt.Errorf("country code %q: %w", code, err)
	}
	if region.String() != code {
		return fmt.Errorf("country code %q is not canonical (want %q)", code, region.String())
	}
	if !region.IsCountry() {
		return fmt.Errorf("region %q is not a country", code)
	}
	return nil
}
