// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package artifact

import (
	"bytes"
	"hash/crc32"
	"os"
	"testing"

	"planbridge/server/internal/errors"
	"planbridge/server/internal/wire"
)

func testReceiver(t *testing.T) (*Receiver, *Store) {
	t.Helper()
	store := NewStore(t.TempDir(), "s1", nil)
	return NewReceiver(store), store
}

func goodChunk(data []byte) *wire.ArtifactChunk {
	return &wire.ArtifactChunk{Data: data, Crc: int64(crc32.ChecksumIEEE(data))}
}

func badChunk(data []byte) *wire.ArtifactChunk {
	return &wire.ArtifactChunk{Data: data, Crc: int64(crc32.ChecksumIEEE(data)) + 1}
}

func batchReq(artifacts ...*wire.SingleChunkArtifact) *wire.AddArtifactsRequest {
	return &wire.AddArtifactsRequest{Payload: &wire.AddArtifactsRequest_Batch_{
		Batch: &wire.ArtifactBatch{Artifacts: artifacts},
	}}
}

func beginReq(name string, totalBytes, numChunks int64, initial *wire.ArtifactChunk) *wire.AddArtifactsRequest {
	return &wire.AddArtifactsRequest{Payload: &wire.AddArtifactsRequest_BeginChunk{
		BeginChunk: &wire.BeginChunkedArtifact{
			Name:         name,
			TotalBytes:   totalBytes,
			NumChunks:    numChunks,
			InitialChunk: initial,
		},
	}}
}

func chunkReq(c *wire.ArtifactChunk) *wire.AddArtifactsRequest {
	return &wire.AddArtifactsRequest{Payload: &wire.AddArtifactsRequest_Chunk{Chunk: c}}
}

func TestReceiverBatch(t *testing.T) {
	recv, store := testReceiver(t)

	data := []byte("0123456789")
	req := batchReq(
		&wire.SingleChunkArtifact{Name: "jars/a.jar", Data: goodChunk(data)},
		&wire.SingleChunkArtifact{Name: "files/b.txt", Data: badChunk([]byte("nope"))},
	)
	if err := recv.Accept(req); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	out := recv.Finish()
	if len(out) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(out))
	}
	if !out[0].IsCrcSuccessful || out[0].Name != "jars/a.jar" {
		t.Errorf("first outcome: %+v", out[0])
	}
	if out[1].IsCrcSuccessful {
		t.Errorf("CRC mismatch reported as success: %+v", out[1])
	}

	// Only the verified artifact became durable.
	p, err := store.Path("jars/a.jar")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read stored artifact: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("stored %q, want %q", got, data)
	}
	if p, _ := store.Path("files/b.txt"); p != "" {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Error("failed artifact was written to disk")
		}
	}
}

func TestReceiverChunkedSuccess(t *testing.T) {
	recv, store := testReceiver(t)

	parts := [][]byte{[]byte("aaaaaaaaaa"), []byte("bbbbbbbbbb"), []byte("cccccccccc")}
	if err := recv.Accept(beginReq("files/big.bin", 30, 3, goodChunk(parts[0]))); err != nil {
		t.Fatalf("begin: %v", err)
	}
	for _, p := range parts[1:] {
		if err := recv.Accept(chunkReq(goodChunk(p))); err != nil {
			t.Fatalf("chunk: %v", err)
		}
	}

	out := recv.Finish()
	if len(out) != 1 || !out[0].IsCrcSuccessful {
		t.Fatalf("outcomes: %+v", out)
	}
	p, _ := store.Path("files/big.bin")
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if want := bytes.Join(parts, nil); !bytes.Equal(got, want) {
		t.Errorf("reassembled %d bytes, want %d", len(got), len(want))
	}
}

func TestReceiverChunkCRCFailure(t *testing.T) {
	recv, _ := testReceiver(t)

	if err := recv.Accept(beginReq("files/big.bin", 30, 3, goodChunk(bytes.Repeat([]byte("a"), 10)))); err != nil {
		t.Fatalf("begin: %v", err)
	}
	// A corrupt interior chunk fails the artifact but the stream keeps going.
	if err := recv.Accept(chunkReq(badChunk(bytes.Repeat([]byte("b"), 10)))); err != nil {
		t.Fatalf("corrupt chunk must not abort the stream: %v", err)
	}
	if err := recv.Accept(chunkReq(goodChunk(bytes.Repeat([]byte("c"), 10)))); err != nil {
		t.Fatalf("trailing chunk: %v", err)
	}

	// A sibling artifact after the failure is unaffected.
	if err := recv.Accept(batchReq(&wire.SingleChunkArtifact{Name: "files/ok.txt", Data: goodChunk([]byte("fine"))})); err != nil {
		t.Fatalf("batch after failed chunked artifact: %v", err)
	}

	out := recv.Finish()
	if len(out) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(out))
	}
	if out[0].IsCrcSuccessful {
		t.Errorf("corrupt artifact reported as success: %+v", out[0])
	}
	if !out[1].IsCrcSuccessful {
		t.Errorf("sibling artifact affected by failure: %+v", out[1])
	}
}

func TestReceiverByteTotalMismatch(t *testing.T) {
	recv, _ := testReceiver(t)

	// Declared 31 bytes, delivers 30 across CRC-valid chunks.
	if err := recv.Accept(beginReq("files/short.bin", 31, 2, goodChunk(bytes.Repeat([]byte("a"), 10)))); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := recv.Accept(chunkReq(goodChunk(bytes.Repeat([]byte("b"), 20)))); err != nil {
		t.Fatalf("chunk: %v", err)
	}
	out := recv.Finish()
	if len(out) != 1 || out[0].IsCrcSuccessful {
		t.Fatalf("byte-total mismatch must fail the artifact: %+v", out)
	}
}

func TestReceiverSequencingViolations(t *testing.T) {
	tests := []struct {
		name string
		run  func(r *Receiver) error
	}{
		{
			name: "batch while chunked artifact open",
			run: func(r *Receiver) error {
				if err := r.Accept(beginReq("a", 20, 2, goodChunk([]byte("0123456789")))); err != nil {
					return err
				}
				return r.Accept(batchReq(&wire.SingleChunkArtifact{Name: "b", Data: goodChunk([]byte("x"))}))
			},
		},
		{
			name: "second begin while open",
			run: func(r *Receiver) error {
				if err := r.Accept(beginReq("a", 20, 2, goodChunk([]byte("0123456789")))); err != nil {
					return err
				}
				return r.Accept(beginReq("b", 20, 2, goodChunk([]byte("0123456789"))))
			},
		},
		{
			name: "chunk while idle",
			run: func(r *Receiver) error {
				return r.Accept(chunkReq(goodChunk([]byte("orphan"))))
			},
		},
		{
			name: "chunk after completion",
			run: func(r *Receiver) error {
				if err := r.Accept(beginReq("a", 10, 1, goodChunk([]byte("0123456789")))); err != nil {
					return err
				}
				return r.Accept(chunkReq(goodChunk([]byte("extra"))))
			},
		},
		{
			name: "request without payload",
			run: func(r *Receiver) error {
				return r.Accept(&wire.AddArtifactsRequest{})
			},
		},
		{
			name: "begin with zero chunks",
			run: func(r *Receiver) error {
				return r.Accept(beginReq("a", 0, 0, goodChunk(nil)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recv, _ := testReceiver(t)
			err := tt.run(recv)
			if !errors.IsKind(err, errors.InvalidRequest) {
				t.Fatalf("expected invalid_request, got %v", err)
			}
		})
	}
}

func TestReceiverFinishWithOpenArtifact(t *testing.T) {
	recv, _ := testReceiver(t)

	if err := recv.Accept(beginReq("files/truncated.bin", 20, 2, goodChunk(bytes.Repeat([]byte("a"), 10)))); err != nil {
		t.Fatalf("begin: %v", err)
	}
	out := recv.Finish()
	if len(out) != 1 || out[0].IsCrcSuccessful || out[0].Name != "files/truncated.bin" {
		t.Fatalf("unfinished artifact must be reported failed: %+v", out)
	}
}
