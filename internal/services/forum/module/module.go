// Package module provides the forum module implementation
package module

import (
	"rollcall/internal/modkit"
	"rollcall/internal/services/forum/domain"
	"rollcall/internal/services/forum/service"
)

// Ports defines the forum module ports
type Ports struct {
	Aggregator domain.AggregatorPort
}

// Module implements the forum module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the forum module.
// The course platform port is injected by the caller via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	built := modkit.Build(opts...)
	course, ok := built.Ports.(domain.CoursePort)
	if !ok || course == nil {
		panic("forum module requires a CoursePort via modkit.WithPorts")
	}

	svc := service.New(course, FromConfig(deps.Cfg))

	m := &Module{deps: deps}
	m.ports = Ports{Aggregator: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "forum" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
