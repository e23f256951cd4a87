// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package service

import (
	"hash/crc32"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planbridge/server/internal/wire"
)

func artifactBatchReq(sessionID string, name string, data []byte) *wire.AddArtifactsRequest {
	return &wire.AddArtifactsRequest{
		SessionId:   sessionID,
		UserContext: testUser(),
		Payload: &wire.AddArtifactsRequest_Batch_{Batch: &wire.ArtifactBatch{
			Artifacts: []*wire.SingleChunkArtifact{{
				Name: name,
				Data: &wire.ArtifactChunk{Data: data, Crc: int64(crc32.ChecksumIEEE(data))},
			}},
		}},
	}
}

func TestAddArtifacts(t *testing.T) {
	svc, _ := newTestService(t)

	stream := newArtifactStream(
		artifactBatchReq("s1", "jars/a.jar", []byte("first")),
		// Follow-up messages need not repeat the session identifiers.
		artifactBatchReq("", "files/b.txt", []byte("second")),
	)
	if err := svc.AddArtifacts(stream); err != nil {
		t.Fatalf("AddArtifacts: %v", err)
	}
	if stream.response == nil {
		t.Fatal("no response sent")
	}
	if len(stream.response.Artifacts) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(stream.response.Artifacts))
	}
	for _, a := range stream.response.Artifacts {
		if !a.IsCrcSuccessful {
			t.Errorf("artifact %q failed", a.Name)
		}
	}
}

func TestAddArtifactsEmptyStream(t *testing.T) {
	svc, _ := newTestService(t)

	stream := newArtifactStream()
	if err := svc.AddArtifacts(stream); err != nil {
		t.Fatalf("AddArtifacts: %v", err)
	}
	if stream.response == nil || len(stream.response.Artifacts) != 0 {
		t.Errorf("empty stream must yield an empty response, got %v", stream.response)
	}
}

func TestAddArtifactsSequencingViolationAborts(t *testing.T) {
	svc, _ := newTestService(t)

	// A chunk with no open chunked artifact is a protocol violation.
	stream := newArtifactStream(&wire.AddArtifactsRequest{
		SessionId:   "s1",
		UserContext: testUser(),
		Payload: &wire.AddArtifactsRequest_Chunk{
			Chunk: &wire.ArtifactChunk{Data: []byte("orphan"), Crc: int64(crc32.ChecksumIEEE([]byte("orphan")))},
		},
	})
	err := svc.AddArtifacts(stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("got %v, want InvalidArgument", err)
	}
	if stream.response != nil {
		t.Error("aborted stream must not send a summary")
	}
}

func TestAddArtifactsRequiresIdentity(t *testing.T) {
	svc, _ := newTestService(t)

	stream := newArtifactStream(artifactBatchReq("", "a.jar", []byte("x")))
	err := svc.AddArtifacts(stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing session id: got %v", err)
	}
}
