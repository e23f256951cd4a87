// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package client provides the gRPC client for the Planbridge protocol. It
// handles connection lifecycle, authentication metadata, unary analyze and
// config calls, the execute response stream, and chunked artifact upload
// with per-chunk CRC computation.
package client

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"planbridge/server/internal/wire"
)

// Options configures a connection.
type Options struct {
	Addr  string
	Token string
	// Insecure disables TLS; meant for localhost development servers.
	Insecure  bool
	UserID    string
	UserName  string
	SessionID string
}

// Client is a connection to one Planbridge server, scoped to one session.
type Client struct {
	conn      *grpc.ClientConn
	token     string
	userID    string
	userName  string
	sessionID string
}

// Connect dials the server. The default port is 443 for TLS targets and
// 15002 for insecure ones.
func Connect(ctx context.Context, opts Options) (*Client, error) {
	if opts.Addr == "" {
		return nil, errors.New("client: server address is required")
	}
	if opts.SessionID == "" {
		return nil, errors.New("client: session id is required")
	}
	if opts.UserID == "" {
		return nil, errors.New("client: user id is required")
	}

	host := opts.Addr
	if h, _, err := net.SplitHostPort(opts.Addr); err == nil {
		host = h
	}
	target := opts.Addr
	if _, _, err := net.SplitHostPort(opts.Addr); err != nil {
		port := "443"
		if opts.Insecure {
			port = "15002"
		}
		target = net.JoinHostPort(opts.Addr, port)
	}

	var creds credentials.TransportCredentials
	if opts.Insecure {
		creds = insecure.NewCredentials()
	} else {
		creds = credentials.NewTLS(&tls.Config{ServerName: host, MinVersion: tls.VersionTLS12})
	}

	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, err
	}
	return &Client{
		conn:      conn,
		token:     opts.Token,
		userID:    opts.UserID,
		userName:  opts.UserName,
		sessionID: opts.SessionID,
	}, nil
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// SessionID returns the session id this client stamps on every request.
func (c *Client) SessionID() string { return c.sessionID }

// callCtx attaches authorization metadata when a token is present.
func (c *Client) callCtx(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	md := metadata.Pairs("authorization", "Bearer "+c.token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *Client) userContext() *wire.UserContext {
	return &wire.UserContext{UserId: c.userID, UserName: c.userName}
}

// Analyze sends one analyze operation. Session and user identity are stamped
// here; callers fill only the operation.
func (c *Client) Analyze(ctx context.Context, req *wire.AnalyzePlanRequest) (*wire.AnalyzePlanResponse, error) {
	req.SessionId = c.sessionID
	req.UserContext = c.userContext()
	resp := new(wire.AnalyzePlanResponse)
	if err := c.conn.Invoke(c.callCtx(ctx), wire.MethodAnalyzePlan, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Version asks the server for its engine version; also the cheapest way to
// verify a connection end to end.
func (c *Client) Version(ctx context.Context) (string, error) {
	resp, err := c.Analyze(ctx, &wire.AnalyzePlanRequest{
		Analyze: &wire.AnalyzePlanRequest_Version{Version: &wire.VersionRequest{}},
	})
	if err != nil {
		return "", err
	}
	v, ok := resp.GetResult().(*wire.AnalyzePlanResponse_Version)
	if !ok {
		return "", errors.New("client: server answered with the wrong analyze variant")
	}
	return v.Version.Version, nil
}

// Config sends one config operation.
func (c *Client) Config(ctx context.Context, op *wire.ConfigOperation) (*wire.ConfigResponse, error) {
	req := &wire.ConfigRequest{
		SessionId:   c.sessionID,
		UserContext: c.userContext(),
		Operation:   op,
	}
	resp := new(wire.ConfigResponse)
	if err := c.conn.Invoke(c.callCtx(ctx), wire.MethodConfig, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ExecuteStream is the receive side of one execute call.
type ExecuteStream struct {
	stream *grpc.GenericClientStream[wire.ExecutePlanRequest, wire.ExecutePlanResponse]
}

// Recv returns the next response chunk; io.EOF after the last one.
func (s *ExecuteStream) Recv() (*wire.ExecutePlanResponse, error) {
	return s.stream.Recv()
}

// ExecutePlan submits a plan and returns the response stream.
func (c *Client) ExecutePlan(ctx context.Context, plan *wire.Plan) (*ExecuteStream, error) {
	cs, err := c.conn.NewStream(c.callCtx(ctx), &grpc.StreamDesc{ServerStreams: true}, wire.MethodExecutePlan)
	if err != nil {
		return nil, err
	}
	stream := &grpc.GenericClientStream[wire.ExecutePlanRequest, wire.ExecutePlanResponse]{ClientStream: cs}
	req := &wire.ExecutePlanRequest{
		SessionId:   c.sessionID,
		UserContext: c.userContext(),
		Plan:        plan,
	}
	if err := stream.Send(req); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &ExecuteStream{stream: stream}, nil
}

// ExecuteSQL is the common case: run a SQL query and stream its batches.
func (c *Client) ExecuteSQL(ctx context.Context, query string) (*ExecuteStream, error) {
	return c.ExecutePlan(ctx, &wire.Plan{
		OpType: &wire.Plan_Root{
			Root: &wire.Relation{
				RelType: &wire.Relation_Sql{Sql: &wire.SQL{Query: query}},
			},
		},
	})
}

// WaitReady blocks until the connection is usable or the timeout elapses,
// by issuing a Version round trip.
func (c *Client) WaitReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	_, err := c.Version(ctx)
	return err
}
