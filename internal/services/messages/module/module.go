// Package module provides the messages module implementation
package module

import (
	"rollcall/internal/modkit"
	"rollcall/internal/services/messages/domain"
	"rollcall/internal/services/messages/service"
)

// Ports defines the messages module ports
type Ports struct {
	Aggregator domain.AggregatorPort
}

// Module implements the messages module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the messages module.
// The conversations port is injected by the caller via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	built := modkit.Build(opts...)
	conv, ok := built.Ports.(domain.ConversationsPort)
	if !ok || conv == nil {
		panic("messages module requires a ConversationsPort via modkit.WithPorts")
	}

	svc := service.New(conv, FromConfig(deps.Cfg))

	m := &Module{deps: deps}
	m.ports = Ports{Aggregator: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "messages" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
