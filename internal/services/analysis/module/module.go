// Package module provides the analysis module implementation
package module

import (
	"context"

	"rollcall/internal/modkit"
	"rollcall/internal/platform/logger"
	"rollcall/internal/services/analysis/service"
	forumdom "rollcall/internal/services/forum/domain"
	msgdom "rollcall/internal/services/messages/domain"
)

// RunnerPort is the public port exposed by the analysis module
type RunnerPort interface {
	Run(ctx context.Context) (service.Report, error)
}

// Channels carries the aggregator ports the runner consumes. Either may be
// nil when the matching channel is disabled in config
type Channels struct {
	Forums   forumdom.AggregatorPort
	Messages msgdom.AggregatorPort
}

// Ports defines the analysis module ports
type Ports struct {
	Runner RunnerPort
}

// Module implements the analysis module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the analysis module.
// The channel aggregators are injected by the caller via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	built := modkit.Build(opts...)
	ch, ok := built.Ports.(Channels)
	if !ok {
		panic("analysis module requires Channels via modkit.WithPorts")
	}

	svc, err := service.New(ch.Forums, ch.Messages, FromConfig(deps.Cfg))
	if err != nil {
		logger.Get().Panic().Err(err).Msg("analysis module misconfigured")
	}

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "analysis" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
