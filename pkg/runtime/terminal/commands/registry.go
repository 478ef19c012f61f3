package commands

import (
	"fmt"
	"io"
	"sort"
)

// ReporterFactory creates a Reporter writing to w
type ReporterFactory func(w io.Writer) Reporter

// ReporterRegistry resolves the --format flag to a reporter
type ReporterRegistry interface {
	// Create instantiates a reporter for the format writing to w
	Create(format string, w io.Writer) (Reporter, error)
	// ListFormats returns the known formats in lexical order
	ListFormats() []string
}

// formats is fixed at construction, so lookups need no locking.
type formats map[string]ReporterFactory

// NewReporterRegistry builds a registry over the given format factories.
// Empty names and nil factories are skipped.
func NewReporterRegistry(factories map[string]ReporterFactory) ReporterRegistry {
	r := make(formats, len(factories))
	for name, factory := range factories {
		if name == "" || factory == nil {
			continue
		}
		r[name] = factory
	}
	return r
}

func (f formats) Create(format string, w io.Writer) (Reporter, error) {
	factory, ok := f[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return factory(w), nil
}

func (f formats) ListFormats() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
