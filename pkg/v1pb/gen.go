// Package v1pb contains the wire types and gRPC bindings of the calculator service.
package v1pb

//go:generate protoc -I. --gogo_out=plugins=grpc:. calculator.proto
