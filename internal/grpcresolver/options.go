package grpcresolver

import (
	"time"

	"google.golang.org/grpc"
)

// Options configures a Transport's dialing and pooling behavior.
//
// Defaults:
//   - MaxConnsPerEndpoint: 2
//   - RPCTimeout:          3s (used only if the incoming context has no deadline)
//   - DialOptions:         insecure credentials
//
// Provider must be set (use StaticEndpoints or a custom implementation); a
// Transport with no Provider errors on every call.
type Options struct {
	Provider EndpointProvider

	MaxConnsPerEndpoint int
	RPCTimeout          time.Duration

	DialOptions []grpc.DialOption
}

type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		MaxConnsPerEndpoint: 2,
		RPCTimeout:          3 * time.Second,
	}
}

func WithProvider(p EndpointProvider) Option { return func(o *Options) { o.Provider = p } }
func WithMaxConnsPerEndpoint(n int) Option   { return func(o *Options) { o.MaxConnsPerEndpoint = n } }
func WithRPCTimeout(d time.Duration) Option  { return func(o *Options) { o.RPCTimeout = d } }
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *Options) { o.DialOptions = opts }
}
