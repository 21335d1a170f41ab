// Package generate runs the fetch, normalize and render pipeline.
package generate

import (
	"context"
	"fmt"

	"github.com/hightemp/countrygen/internal/config"
	"github.com/hightemp/countrygen/internal/countries"
	"github.com/hightemp/countrygen/internal/fetch"
	"github.com/hightemp/countrygen/internal/manifest"
	"github.com/hightemp/countrygen/internal/render"
)

// Fetcher retrieves the source document.
type Fetcher interface {
	Fetch(ctx context.Context, location, defaultEncoding string) (*fetch.Document, error)
}

// WriteError reports a failure to write the generated file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a run.
type Result struct {
	Document *fetch.Document
	Entries  []countries.Entry
	Tables   *countries.Tables
	Output   []byte
	Manifest *manifest.Manifest
	Written  bool

	// ManifestErr is set when the generated file was written but the
	// manifest could not be saved.
	ManifestErr error
}

// Run fetches the source list, builds the tables and writes the generated
// file. Nothing is written unless every earlier step succeeded.
func Run(ctx context.Context, cfg *config.Config, f Fetcher) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	doc, err := f.Fetch(ctx, cfg.Location, cfg.DefaultEncoding)
	if err != nil {
		return nil, err
	}

	res := &Result{Document: doc}
	res.Entries = countries.ParseLines(doc.Lines())
	res.Tables = countries.Build(res.Entries)

	res.Output, err = render.Bytes(res.Tables, render.Options{
		Format:    format,
		Package:   cfg.Package,
		Generator: config.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	res.Manifest = newManifest(cfg, res)

	if cfg.DryRun {
		return res, nil
	}

	if err := render.WriteFile(cfg.Filename, res.Output); err != nil {
		return nil, &WriteError{Path: cfg.Filename, Err: err}
	}
	res.Written = true

	if cfg.Manifest != "" {
		if err := res.Manifest.Save(cfg.Manifest); err != nil {
			res.ManifestErr = fmt.Errorf("save manifest %s: %w", cfg.Manifest, err)
		}
	}

	return res, nil
}

func newManifest(cfg *config.Config, res *Result) *manifest.Manifest {
	m := manifest.New()
	m.Location = res.Document.Location
	m.Encoding = res.Document.Encoding
	m.ContentHash = res.Document.Hash
	m.Entries = len(res.Entries)
	m.CountriesCount = len(res.Tables.Countries)
	m.CountriesPlusCount = len(res.Tables.CountriesPlus)
	m.OfficialCount = len(res.Tables.Official)
	m.Output = cfg.Filename
	m.OutputHash = fetch.HashContent(res.Output)
	m.Format = cfg.Format
	m.Generator = config.AppName
	return m
}
