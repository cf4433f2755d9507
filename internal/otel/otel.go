package otel

import (
	"context"
	"sync"

	eventbus "github.com/oakwire/gqlexec/internal/eventbus"
	events "github.com/oakwire/gqlexec/internal/events"
	reqid "github.com/oakwire/gqlexec/internal/reqid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: otel.Tracer("gqlexec")}
	sub.register()

	return tp.Shutdown, nil
}

// subscriber turns the engine's RequestStart/RequestFinish and
// FieldStart/FieldFinish events into a span tree, keyed by the request id
// carried on the context (request span) and by path (field spans).
type subscriber struct {
	tracer      trace.Tracer
	requestSpan sync.Map // rid -> trace.Span
	fieldSpans  sync.Map // rid+path -> trace.Span
	grpcSpans   sync.Map // rid -> trace.Span
}

type fieldKey struct {
	rid  int64
	path string
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.RequestStart) {
		rid, _ := reqid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "graphql.request")
		span.SetAttributes(
			attribute.String("graphql.operation.name", e.OperationName),
			attribute.String("graphql.operation.type", e.OperationType),
		)
		s.requestSpan.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.RequestFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.requestSpan.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(attribute.Int("graphql.error_count", len(e.Errors)))
		span.End()
	})

	eventbus.Subscribe(func(ctx context.Context, e events.FieldStart) {
		rid, _ := reqid.FromContext(ctx)
		parent := ctx
		if v, ok := s.requestSpan.Load(rid); ok {
			parent = trace.ContextWithSpan(ctx, v.(trace.Span))
		}
		_, span := s.tracer.Start(parent, "graphql.field")
		span.SetAttributes(
			attribute.String("graphql.field.type", e.TypeName),
			attribute.String("graphql.field.name", e.FieldName),
			attribute.String("graphql.field.path", e.Path),
		)
		s.fieldSpans.Store(fieldKey{rid, e.Path}, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.FieldFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.fieldSpans.LoadAndDelete(fieldKey{rid, e.Path})
		if !ok {
			return
		}
		span := v.(trace.Span)
		if e.Err != nil {
			span.RecordError(e.Err)
		}
		span.End()
	})

	eventbus.Subscribe(func(ctx context.Context, e events.GRPCClientStart) {
		rid, _ := reqid.FromContext(ctx)
		parent := ctx
		if v, ok := s.requestSpan.Load(rid); ok {
			parent = trace.ContextWithSpan(ctx, v.(trace.Span))
		}
		_, span := s.tracer.Start(parent, "grpc.client")
		span.SetAttributes(
			semconv.RPCServiceKey.String(e.Service),
			semconv.RPCMethodKey.String(e.Method),
			attribute.String("net.peer.name", e.Target),
		)
		s.grpcSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.GRPCClientFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.grpcSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(attribute.String("grpc.code", e.Code.String()))
		if e.Err != nil {
			span.RecordError(e.Err)
		}
		span.End()
	})
}
