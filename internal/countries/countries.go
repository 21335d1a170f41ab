// Package countries parses the ISO 3166 semicolon-delimited country list
// and derives the display name variants emitted by the generator.
package countries

import "regexp"

// Entry is one record of the source list.
type Entry struct {
	Code string
	Name string
}

// Row is one (code, display name) pair of an output table.
type Row struct {
	Code string
	Name string
}

// Tables holds the three ordered output tables.
type Tables struct {
	// Official names exactly as given by the source, in source order.
	Official []Row
	// Countries holds title-cased names in source order.
	Countries []Row
	// CountriesPlus holds title-cased names plus the inverted form of
	// every comma name, sorted by FoldKey then code.
	CountriesPlus []Row
}

var validLine = regexp.MustCompile(`^\s*(.+);([A-Z]{2})\s*$`)

// ParseLine extracts the entry from a "name;CC" line.
func ParseLine(line string) (Entry, bool) {
	m := validLine.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{Code: m[2], Name: m[1]}, true
}

// ParseLines returns the entries of all matching lines in input order.
// Lines that don't match are skipped; duplicates are kept.
func ParseLines(lines []string) []Entry {
	var entries []Entry
	for _, line := range lines {
		if e, ok := ParseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Build derives the three tables from the parsed entries.
func Build(entries []Entry) *Tables {
	t := &Tables{
		Official:  make([]Row, 0, len(entries)),
		Countries: make([]Row, 0, len(entries)),
	}

	for _, e := range entries {
		names := Normalize(e.Name)
		t.Official = append(t.Official, Row{Code: e.Code, Name: names.Official})
		t.Countries = append(t.Countries, Row{Code: e.Code, Name: names.Title})
		if names.Plus != "" {
			t.CountriesPlus = append(t.CountriesPlus, Row{Code: e.Code, Name: names.Plus})
		}
		t.CountriesPlus = append(t.CountriesPlus, Row{Code: e.Code, Name: names.Title})
	}

	SortPlus(t.CountriesPlus)
	return t
}
