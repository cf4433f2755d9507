package grpcresolver

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	eventbus "github.com/oakwire/gqlexec/internal/eventbus"
	events "github.com/oakwire/gqlexec/internal/events"
)

// Transport is a gRPC transport with connection pooling and deadline
// propagation, dispatching calls with the generic grpc.ClientConn.Invoke
// rather than a service-specific generated client: arguments and results
// travel as structpb.Struct/structpb.Value, so a resolver never needs a
// compiled .proto stub to reach a remote field.
type Transport struct {
	opts *Options

	mu     sync.RWMutex
	pools  map[string]*connPool // key: endpoint
	closed atomic.Bool
}

func NewTransport(opts ...Option) *Transport {
	o := defaultOptions()
	for _, f := range opts {
		f(o)
	}
	if len(o.DialOptions) == 0 {
		o.DialOptions = []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithConnectParams(grpc.ConnectParams{Backoff: backoff.DefaultConfig}),
		}
	}
	return &Transport{
		opts:  o,
		pools: make(map[string]*connPool),
	}
}

// Call invokes service/method against one of the provider's endpoints,
// marshaling args as a structpb.Struct and returning the response
// structpb.Value's native Go representation.
func (t *Transport) Call(ctx context.Context, service, method string, args map[string]any) (any, error) {
	if t.closed.Load() {
		return nil, fmt.Errorf("grpcresolver: closed")
	}
	if t.opts.Provider == nil {
		return nil, fmt.Errorf("grpcresolver: provider not configured")
	}

	req, err := structpb.NewStruct(args)
	if err != nil {
		return nil, fmt.Errorf("grpcresolver: encode arguments: %w", err)
	}

	fullMethod := fmt.Sprintf("/%s/%s", service, method)

	if _, ok := ctx.Deadline(); !ok && t.opts.RPCTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.RPCTimeout)
		defer cancel()
	}
	ctx = metadata.AppendToOutgoingContext(ctx, "x-gqlexec-service", service)

	endpoints, err := t.opts.Provider.Endpoints(ctx, service)
	if err != nil {
		return nil, err
	}
	endpoint := endpoints[rand.Intn(len(endpoints))]

	cc, err := t.getConn(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer t.returnConn(endpoint, cc)

	start := time.Now()
	eventbus.Publish(ctx, events.GRPCClientStart{Service: service, Method: method, Target: endpoint})
	resp := &structpb.Value{}
	err = cc.Invoke(ctx, fullMethod, req, resp)
	eventbus.Publish(ctx, events.GRPCClientFinish{
		Service:  service,
		Method:   method,
		Target:   endpoint,
		Code:     status.Code(err),
		Err:      err,
		Duration: time.Since(start),
	})
	if err != nil {
		return nil, err
	}
	return resp.AsInterface(), nil
}

func (t *Transport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.pools {
		p.close()
	}
	t.pools = map[string]*connPool{}
	return nil
}

type connPool struct {
	endpoint string
	opts     *Options
	conns    chan *grpc.ClientConn
	closed   atomic.Bool
}

func newConnPool(endpoint string, opts *Options) *connPool {
	n := opts.MaxConnsPerEndpoint
	if n <= 0 {
		n = 2
	}
	return &connPool{endpoint: endpoint, opts: opts, conns: make(chan *grpc.ClientConn, n)}
}

func (p *connPool) get(ctx context.Context) (*grpc.ClientConn, error) {
	if p.closed.Load() {
		return nil, fmt.Errorf("grpcresolver: pool closed")
	}
	select {
	case cc := <-p.conns:
		return cc, nil
	default:
		return grpc.DialContext(ctx, p.endpoint, p.opts.DialOptions...)
	}
}

func (p *connPool) put(cc *grpc.ClientConn) {
	if cc == nil || p.closed.Load() {
		if cc != nil {
			_ = cc.Close()
		}
		return
	}
	select {
	case p.conns <- cc:
	default:
		_ = cc.Close()
	}
}

func (p *connPool) close() {
	if p.closed.Swap(true) {
		return
	}
	close(p.conns)
	for cc := range p.conns {
		_ = cc.Close()
	}
}

func (t *Transport) getConn(ctx context.Context, endpoint string) (*grpc.ClientConn, error) {
	t.mu.RLock()
	pool := t.pools[endpoint]
	t.mu.RUnlock()
	if pool == nil {
		t.mu.Lock()
		pool = t.pools[endpoint]
		if pool == nil {
			pool = newConnPool(endpoint, t.opts)
			t.pools[endpoint] = pool
		}
		t.mu.Unlock()
	}
	return pool.get(ctx)
}

func (t *Transport) returnConn(endpoint string, cc *grpc.ClientConn) {
	t.mu.RLock()
	pool := t.pools[endpoint]
	t.mu.RUnlock()
	if pool != nil {
		pool.put(cc)
		return
	}
	_ = cc.Close()
}
