package app

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs where each configuration key was resolved from.
// Values are never logged.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect writes one line per configuration access.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "", log.Lmsgprefix)
	}

	for _, cfg := range r.Configs {
		source := "provider"
		if cfg.UsedDefault {
			source = "default"
		}
		logger.Printf("Introspection: config %s resolved from %s", cfg.Key, source)
	}
	return nil
}
