// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package artifact reassembles client-uploaded binary artifacts from a
// request stream that interleaves small-artifact batches with chunked
// uploads, verifying each piece against its CRC32 checksum before anything
// becomes durable.
package artifact

import (
	"bytes"
	"hash/crc32"

	"planbridge/server/internal/errors"
	"planbridge/server/internal/wire"
)

type receiverState int

const (
	stateIdle receiverState = iota
	stateChunkingOpen
)

// openArtifact is the reassembly state for the chunked artifact currently in
// flight. It is an explicit value rather than hidden fields so the sequencing
// rules can be exercised without a live stream.
type openArtifact struct {
	name           string
	declaredBytes  int64
	declaredChunks int64
	bytesReceived  int64
	chunksReceived int64
	buf            bytes.Buffer
	// failed marks the artifact after a chunk CRC mismatch. Remaining chunks
	// are still consumed to keep the stream in sync, but their bytes are
	// discarded.
	failed bool
}

// Receiver drives the per-stream artifact state machine. At most one chunked
// artifact may be open at a time; a batch is only legal while idle. Receivers
// are single-goroutine, matching gRPC's one-reader-per-stream rule.
type Receiver struct {
	store    *Store
	state    receiverState
	open     *openArtifact
	outcomes []*wire.ArtifactSummary
}

func NewReceiver(store *Store) *Receiver {
	return &Receiver{store: store}
}

// Accept processes one stream message. A returned error is a protocol
// violation or storage failure and aborts the whole stream; per-artifact
// verification failures are not errors, they are recorded as outcomes.
func (r *Receiver) Accept(req *wire.AddArtifactsRequest) error {
	switch p := req.GetPayload().(type) {
	case *wire.AddArtifactsRequest_Batch_:
		return r.acceptBatch(p.Batch)
	case *wire.AddArtifactsRequest_BeginChunk:
		return r.acceptBegin(p.BeginChunk)
	case *wire.AddArtifactsRequest_Chunk:
		return r.acceptChunk(p.Chunk)
	case nil:
		return errors.New(errors.InvalidRequest, "artifact request carries no payload")
	default:
		return errors.Newf(errors.InvalidRequest, "unknown artifact payload %T", p)
	}
}

func (r *Receiver) acceptBatch(batch *wire.ArtifactBatch) error {
	if r.state == stateChunkingOpen {
		return errors.Newf(errors.InvalidRequest, "batch received while chunked artifact %q is open", r.open.name)
	}
	if batch == nil {
		return errors.New(errors.InvalidRequest, "empty batch payload")
	}
	for _, a := range batch.Artifacts {
		if a.Name == "" {
			return errors.New(errors.InvalidRequest, "batched artifact without a name")
		}
		if a.Data == nil {
			return errors.Newf(errors.InvalidRequest, "batched artifact %q without data", a.Name)
		}
		if !chunkOK(a.Data) {
			r.record(a.Name, false)
			continue
		}
		if err := r.store.Put(a.Name, a.Data.Data, uint32(a.Data.Crc)); err != nil {
			return err
		}
		r.record(a.Name, true)
	}
	return nil
}

func (r *Receiver) acceptBegin(begin *wire.BeginChunkedArtifact) error {
	if r.state == stateChunkingOpen {
		return errors.Newf(errors.InvalidRequest, "begin for %q while chunked artifact %q is open", begin.GetName(), r.open.name)
	}
	if begin == nil || begin.Name == "" {
		return errors.New(errors.InvalidRequest, "begin_chunk without a name")
	}
	if begin.NumChunks < 1 {
		return errors.Newf(errors.InvalidRequest, "begin_chunk for %q declares %d chunks", begin.Name, begin.NumChunks)
	}
	if begin.InitialChunk == nil {
		return errors.Newf(errors.InvalidRequest, "begin_chunk for %q without an initial chunk", begin.Name)
	}

	open := &openArtifact{
		name:           begin.Name,
		declaredBytes:  begin.TotalBytes,
		declaredChunks: begin.NumChunks,
	}
	r.state = stateChunkingOpen
	r.open = open
	return r.appendChunk(begin.InitialChunk)
}

func (r *Receiver) acceptChunk(chunk *wire.ArtifactChunk) error {
	if r.state != stateChunkingOpen {
		return errors.New(errors.InvalidRequest, "chunk received with no chunked artifact open")
	}
	if chunk == nil {
		return errors.New(errors.InvalidRequest, "empty chunk payload")
	}
	return r.appendChunk(chunk)
}

// appendChunk accumulates one chunk against the open artifact and closes it
// out when the declared chunk count is reached.
func (r *Receiver) appendChunk(chunk *wire.ArtifactChunk) error {
	open := r.open
	open.chunksReceived++
	open.bytesReceived += int64(len(chunk.Data))
	if !chunkOK(chunk) {
		open.failed = true
		open.buf.Reset()
	} else if !open.failed {
		open.buf.Write(chunk.Data)
	}

	if open.chunksReceived < open.declaredChunks {
		return nil
	}

	r.state = stateIdle
	r.open = nil
	if open.failed {
		r.record(open.name, false)
		return nil
	}
	// Chunk count matched but the byte total did not: the declaration was a
	// lie, so the artifact is rejected even though every CRC passed.
	if open.bytesReceived != open.declaredBytes {
		r.record(open.name, false)
		return nil
	}
	data := open.buf.Bytes()
	if err := r.store.Put(open.name, data, crc32.ChecksumIEEE(data)); err != nil {
		return err
	}
	r.record(open.name, true)
	return nil
}

// Finish closes the stream and returns the per-name outcomes. An artifact
// still open at close never completed; its bytes are discarded and it is
// reported as failed so the client knows to resend.
func (r *Receiver) Finish() []*wire.ArtifactSummary {
	if r.state == stateChunkingOpen {
		r.record(r.open.name, false)
		r.state = stateIdle
		r.open = nil
	}
	return r.outcomes
}

func (r *Receiver) record(name string, ok bool) {
	r.outcomes = append(r.outcomes, &wire.ArtifactSummary{Name: name, IsCrcSuccessful: ok})
}

func chunkOK(c *wire.ArtifactChunk) bool {
	return int64(crc32.ChecksumIEEE(c.Data)) == c.Crc
}
