package grpcresolver

import "errors"

// ErrNoEndpoints indicates the provider returned no endpoints for a service.
var ErrNoEndpoints = errors.New("grpcresolver: no endpoints available")
