// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package client

import (
	"context"
	"hash/crc32"
	"os"
	"path/filepath"

	"google.golang.org/grpc"

	"planbridge/server/internal/wire"
)

// DefaultChunkSize bounds one artifact chunk; files at or under it travel
// batched in single-chunk form.
const DefaultChunkSize = 4 << 20

// UploadFile names one local file and its artifact path on the server.
type UploadFile struct {
	// Name is the server-side relative path, e.g. "jars/a.jar".
	Name string
	// Path is the local file to read.
	Path string
}

// Progress is called as upload bytes go out, per artifact.
type Progress func(name string, sent, total int64)

// UploadFileSet maps local paths to artifact names using each file's base
// name under the given prefix.
func UploadFileSet(prefix string, paths []string) []UploadFile {
	files := make([]UploadFile, 0, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		if prefix != "" {
			name = prefix + "/" + name
		}
		files = append(files, UploadFile{Name: name, Path: p})
	}
	return files
}

// Upload streams the files to the server and returns the per-name
// verification outcomes. Small files ride together in one batch message;
// large files are chunked with a CRC per chunk. A nil progress is fine.
func (c *Client) Upload(ctx context.Context, files []UploadFile, progress Progress) ([]*wire.ArtifactSummary, error) {
	cs, err := c.conn.NewStream(c.callCtx(ctx), &grpc.StreamDesc{ClientStreams: true}, wire.MethodAddArtifacts)
	if err != nil {
		return nil, err
	}
	stream := &grpc.GenericClientStream[wire.AddArtifactsRequest, wire.AddArtifactsResponse]{ClientStream: cs}
	if progress == nil {
		progress = func(string, int64, int64) {}
	}

	var batch []*wire.SingleChunkArtifact
	flushBatch := func() error {
		if len(batch) == 0 {
			return nil
		}
		req := c.newArtifactRequest()
		req.Payload = &wire.AddArtifactsRequest_Batch_{
			Batch: &wire.ArtifactBatch{Artifacts: batch},
		}
		batch = nil
		return stream.Send(req)
	}

	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, err
		}
		total := int64(len(data))
		if total <= DefaultChunkSize {
			batch = append(batch, &wire.SingleChunkArtifact{
				Name: f.Name,
				Data: newChunk(data),
			})
			progress(f.Name, total, total)
			continue
		}

		if err := flushBatch(); err != nil {
			return nil, err
		}
		if err := c.uploadChunked(stream, f.Name, data, progress); err != nil {
			return nil, err
		}
	}
	if err := flushBatch(); err != nil {
		return nil, err
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return nil, err
	}
	return resp.Artifacts, nil
}

func (c *Client) uploadChunked(stream *grpc.GenericClientStream[wire.AddArtifactsRequest, wire.AddArtifactsResponse], name string, data []byte, progress Progress) error {
	total := int64(len(data))
	numChunks := (total + DefaultChunkSize - 1) / DefaultChunkSize

	first := data[:DefaultChunkSize]
	begin := c.newArtifactRequest()
	begin.Payload = &wire.AddArtifactsRequest_BeginChunk{
		BeginChunk: &wire.BeginChunkedArtifact{
			Name:         name,
			TotalBytes:   total,
			NumChunks:    numChunks,
			InitialChunk: newChunk(first),
		},
	}
	if err := stream.Send(begin); err != nil {
		return err
	}
	progress(name, int64(len(first)), total)

	for off := int64(DefaultChunkSize); off < total; off += DefaultChunkSize {
		end := off + DefaultChunkSize
		if end > total {
			end = total
		}
		req := c.newArtifactRequest()
		req.Payload = &wire.AddArtifactsRequest_Chunk{Chunk: newChunk(data[off:end])}
		if err := stream.Send(req); err != nil {
			return err
		}
		progress(name, end, total)
	}
	return nil
}

// newArtifactRequest stamps identity onto a stream message. Only the first
// message strictly needs it, but stamping every message keeps the send path
// uniform.
func (c *Client) newArtifactRequest() *wire.AddArtifactsRequest {
	return &wire.AddArtifactsRequest{
		SessionId:   c.sessionID,
		UserContext: c.userContext(),
	}
}

func newChunk(data []byte) *wire.ArtifactChunk {
	return &wire.ArtifactChunk{
		Data: data,
		Crc:  int64(crc32.ChecksumIEEE(data)),
	}
}
