// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package wire

// AddArtifactsRequest is one message of an artifact upload stream. Small
// artifacts ride batched; large ones are split into a begin record followed
// by bare continuation chunks associated with the most recently opened
// artifact in the stream.
type AddArtifactsRequest struct {
	SessionId   string       `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	UserContext *UserContext `protobuf:"bytes,2,opt,name=user_context,json=userContext,proto3" json:"user_context,omitempty"`
	// ClientType is advisory, used for logging only.
	ClientType string `protobuf:"bytes,3,opt,name=client_type,json=clientType,proto3" json:"client_type,omitempty"`

	// Types that are assignable to Payload:
	//	*AddArtifactsRequest_Batch_
	//	*AddArtifactsRequest_BeginChunk
	//	*AddArtifactsRequest_Chunk
	Payload isAddArtifactsRequest_Payload `protobuf_oneof:"payload"`
}

func (m *AddArtifactsRequest) Reset()         { *m = AddArtifactsRequest{} }
func (m *AddArtifactsRequest) String() string { return messageString(m) }
func (*AddArtifactsRequest) ProtoMessage()    {}

func (m *AddArtifactsRequest) GetPayload() isAddArtifactsRequest_Payload {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *AddArtifactsRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

type isAddArtifactsRequest_Payload interface{ isAddArtifactsRequest_Payload() }

type AddArtifactsRequest_Batch_ struct {
	Batch *ArtifactBatch `protobuf:"bytes,4,opt,name=batch,proto3,oneof"`
}
type AddArtifactsRequest_BeginChunk struct {
	BeginChunk *BeginChunkedArtifact `protobuf:"bytes,5,opt,name=begin_chunk,json=beginChunk,proto3,oneof"`
}
type AddArtifactsRequest_Chunk struct {
	Chunk *ArtifactChunk `protobuf:"bytes,6,opt,name=chunk,proto3,oneof"`
}

func (*AddArtifactsRequest_Batch_) isAddArtifactsRequest_Payload()     {}
func (*AddArtifactsRequest_BeginChunk) isAddArtifactsRequest_Payload() {}
func (*AddArtifactsRequest_Chunk) isAddArtifactsRequest_Payload()      {}

func (*AddArtifactsRequest) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*AddArtifactsRequest_Batch_)(nil),
		(*AddArtifactsRequest_BeginChunk)(nil),
		(*AddArtifactsRequest_Chunk)(nil),
	}
}

// ArtifactChunk is one piece of artifact data with its CRC32 checksum. CRCs
// are checked as chunks arrive, not only at the end.
type ArtifactChunk struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Crc  int64  `protobuf:"varint,2,opt,name=crc,proto3" json:"crc,omitempty"`
}

func (m *ArtifactChunk) Reset()         { *m = ArtifactChunk{} }
func (m *ArtifactChunk) String() string { return messageString(m) }
func (*ArtifactChunk) ProtoMessage()    {}

// SingleChunkArtifact is a small artifact carried whole in one chunk.
type SingleChunkArtifact struct {
	Name string         `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Data *ArtifactChunk `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *SingleChunkArtifact) Reset()         { *m = SingleChunkArtifact{} }
func (m *SingleChunkArtifact) String() string { return messageString(m) }
func (*SingleChunkArtifact) ProtoMessage()    {}

// ArtifactBatch groups small artifacts into one request message.
type ArtifactBatch struct {
	Artifacts []*SingleChunkArtifact `protobuf:"bytes,1,rep,name=artifacts,proto3" json:"artifacts,omitempty"`
}

func (m *ArtifactBatch) Reset()         { *m = ArtifactBatch{} }
func (m *ArtifactBatch) String() string { return messageString(m) }
func (*ArtifactBatch) ProtoMessage()    {}

// BeginChunkedArtifact opens a chunked upload: name, declared totals, and the
// first chunk. Continuation chunks are not individually named.
type BeginChunkedArtifact struct {
	Name         string         `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	TotalBytes   int64          `protobuf:"varint,2,opt,name=total_bytes,json=totalBytes,proto3" json:"total_bytes,omitempty"`
	NumChunks    int64          `protobuf:"varint,3,opt,name=num_chunks,json=numChunks,proto3" json:"num_chunks,omitempty"`
	InitialChunk *ArtifactChunk `protobuf:"bytes,4,opt,name=initial_chunk,json=initialChunk,proto3" json:"initial_chunk,omitempty"`
}

func (m *BeginChunkedArtifact) Reset()         { *m = BeginChunkedArtifact{} }
func (m *BeginChunkedArtifact) String() string { return messageString(m) }
func (*BeginChunkedArtifact) ProtoMessage()    {}

func (m *BeginChunkedArtifact) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

// AddArtifactsResponse reports, per artifact name seen in the stream, whether
// verification succeeded. Callers resend artifacts whose verification failed.
type AddArtifactsResponse struct {
	Artifacts []*ArtifactSummary `protobuf:"bytes,1,rep,name=artifacts,proto3" json:"artifacts,omitempty"`
}

func (m *AddArtifactsResponse) Reset()         { *m = AddArtifactsResponse{} }
func (m *AddArtifactsResponse) String() string { return messageString(m) }
func (*AddArtifactsResponse) ProtoMessage()    {}

type ArtifactSummary struct {
	Name            string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	IsCrcSuccessful bool   `protobuf:"varint,2,opt,name=is_crc_successful,json=isCrcSuccessful,proto3" json:"is_crc_successful,omitempty"`
}

func (m *ArtifactSummary) Reset()         { *m = ArtifactSummary{} }
func (m *ArtifactSummary) String() string { return messageString(m) }
func (*ArtifactSummary) ProtoMessage()    {}
