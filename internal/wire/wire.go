// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package wire defines the protobuf messages and the gRPC service surface of
// the Planbridge protocol. The message types are maintained by hand in the
// legacy struct-tag form so the package carries no generated-code dependency;
// they are wire-compatible with a protoc toolchain through the protobuf
// runtime's legacy message support. The service is registered through a
// hand-rolled grpc.ServiceDesc, the server-side mirror of opening client
// streams with a literal grpc.StreamDesc.
//
// Messages are values: a Plan is immutable once constructed and is never
// shared mutably across requests.
package wire

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/runtime/protoimpl"
)

// messageString renders a message for debugging through the protobuf runtime.
func messageString(m protoadapt.MessageV1) string {
	return protoimpl.X.MessageStringOf(protoadapt.MessageV2Of(m))
}

// PlanEqual reports structural equality of two plans. It is reflexive,
// symmetric, and treats nil plans as equal to each other only.
func PlanEqual(a, b *Plan) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return proto.Equal(protoadapt.MessageV2Of(a), protoadapt.MessageV2Of(b))
}
