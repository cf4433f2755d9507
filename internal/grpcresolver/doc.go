// Package grpcresolver adapts a schema.Resolver to reach a remote gRPC
// service without a compiled protoc client: arguments and results cross
// the wire as structpb.Struct/structpb.Value, dispatched through the
// generic grpc.ClientConn.Invoke.
package grpcresolver
