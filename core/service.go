package core

import (
	"context"
)

// Interface is the lifecycle contract every service implements: cache,
// price services and the HTTP server all start and stop through it
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry holds all services in registration order
type Registry struct {
	services []Interface
}

// NewRegistry creates an empty service registry
func NewRegistry() *Registry {
	return &Registry{
		services: make([]Interface, 0),
	}
}

// Register adds a service to the registry
func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// StartAll starts services in registration order, stopping at the first
// failure
func (sr *Registry) StartAll(ctx context.Context) error {
	for _, service := range sr.services {
		if err := service.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// StopAll stops all registered services in reverse registration order, so
// the HTTP server goes down before its dependencies
func (sr *Registry) StopAll() {
	for i := len(sr.services) - 1; i >= 0; i-- {
		sr.services[i].Stop()
	}
}
