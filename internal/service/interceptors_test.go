// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUnaryAuth(t *testing.T) {
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: "/planbridge.PlanService/Config"}

	tests := []struct {
		name  string
		token string
		ctx   context.Context
		want  codes.Code
	}{
		{
			name:  "open server accepts anyone",
			token: "",
			ctx:   context.Background(),
			want:  codes.OK,
		},
		{
			name:  "valid bearer",
			token: "secret",
			ctx:   metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer secret")),
			want:  codes.OK,
		},
		{
			name:  "missing header",
			token: "secret",
			ctx:   context.Background(),
			want:  codes.Unauthenticated,
		},
		{
			name:  "wrong token",
			token: "secret",
			ctx:   metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer other")),
			want:  codes.Unauthenticated,
		},
		{
			name:  "bare token without scheme",
			token: "secret",
			ctx:   metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "secret")),
			want:  codes.Unauthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnaryAuth(tt.token)(tt.ctx, nil, info, handler)
			if status.Code(err) != tt.want {
				t.Errorf("got %v (%v), want %v", status.Code(err), err, tt.want)
			}
		})
	}
}
