// Package render turns the country tables into a generated source file.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"github.com/hightemp/countrygen/internal/countries"
	"github.com/hightemp/countrygen/internal/literal"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Format is an output file format.
type Format string

const (
	// FormatCPP emits the C++ source consumed by the logbook library.
	FormatCPP Format = "cpp"
	// FormatGo emits a Go source file.
	FormatGo Format = "go"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "cpp", "":
		return FormatCPP, nil
	case "go":
		return FormatGo, nil
	default:
		return "", fmt.Errorf("invalid format: %s (use cpp or go)", s)
	}
}

// Options controls rendering.
type Options struct {
	Format    Format
	Package   string
	Generator string
}

// Statement is one table assignment in the generated file.
type Statement struct {
	Table   string
	Code    string
	Literal string
}

// Line renders the statement in the syntax of format f.
func (s Statement) Line(f Format) string {
	if f == FormatGo {
		return fmt.Sprintf("\tt.%s.set(%q, %s)", s.Table, s.Code, s.Literal)
	}
	return fmt.Sprintf("\tt.%s[\"%s\"] = %s;", s.Table, s.Code, s.Literal)
}

type tableNames struct {
	countries, countriesPlus, official string
}

var names = map[Format]tableNames{
	FormatCPP: {"countries", "countries_plus", "official_countries"},
	FormatGo:  {"Countries", "CountriesPlus", "Official"},
}

// Statements converts rows to statements assigning into table.
func Statements(table string, rows []countries.Row, d literal.Dialect) []Statement {
	stmts := make([]Statement, len(rows))
	for i, r := range rows {
		stmts[i] = Statement{Table: table, Code: r.Code, Literal: literal.Encode(r.Name, d)}
	}
	return stmts
}

func block(stmts []Statement, f Format) string {
	lines := make([]string, len(stmts))
	for i, s := range stmts {
		lines[i] = s.Line(f)
	}
	return strings.Join(lines, "\n")
}

type templateData struct {
	Generator string
	Package   string

	Countries     string
	CountriesPlus string
	Official      string

	NumCountries     int
	NumCountriesPlus int
	NumOfficial      int
}

// Render writes the generated file for tables to w.
func Render(w io.Writer, tables *countries.Tables, opts Options) error {
	data, err := Bytes(tables, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Bytes returns the generated file for tables.
func Bytes(tables *countries.Tables, opts Options) ([]byte, error) {
	f := opts.Format
	if f == "" {
		f = FormatCPP
	}
	tn, ok := names[f]
	if !ok {
		return nil, fmt.Errorf("invalid format: %s", f)
	}

	dialect := literal.C
	if f == FormatGo {
		dialect = literal.Go
	}

	data := templateData{
		Generator:        opts.Generator,
		Package:          opts.Package,
		Countries:        block(Statements(tn.countries, tables.Countries, dialect), f),
		CountriesPlus:    block(Statements(tn.countriesPlus, tables.CountriesPlus, dialect), f),
		Official:         block(Statements(tn.official, tables.Official, dialect), f),
		NumCountries:     len(tables.Countries),
		NumCountriesPlus: len(tables.CountriesPlus),
		NumOfficial:      len(tables.Official),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "countries."+string(f)+".tmpl", data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	if f != FormatGo {
		return buf.Bytes(), nil
	}

	if opts.Package == "" {
		return nil, fmt.Errorf("package name required for go format")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
