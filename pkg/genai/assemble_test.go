package genai_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cakap/upskill/pkg/genai"
)

// sliceStream replays a fixed chunk sequence, optionally failing at one
// position with a transport-class error.
type sliceStream struct {
	chunks []*genai.GenerateResponse
	i      int
	failAt int // -1 = never
	err    error
	closed bool
}

func newSliceStream(chunks ...*genai.GenerateResponse) *sliceStream {
	return &sliceStream{chunks: chunks, failAt: -1}
}

func (s *sliceStream) Next() (*genai.GenerateResponse, error) {
	if s.failAt >= 0 && s.i == s.failAt {
		return nil, s.err
	}
	if s.i >= len(s.chunks) {
		return nil, io.EOF
	}
	c := s.chunks[s.i]
	s.i++
	return c, nil
}

func (s *sliceStream) Close() error {
	s.closed = true
	return nil
}

func textChunk(text string) *genai.GenerateResponse {
	return &genai.GenerateResponse{
		Candidates: []genai.Candidate{{
			Content: genai.Content{Parts: []genai.Part{{Text: text}}},
		}},
	}
}

// emptyChunk has a candidate but no parts, the shape the provider sends for
// a filtered or empty delta.
func emptyChunk() *genai.GenerateResponse {
	return &genai.GenerateResponse{
		Candidates: []genai.Candidate{{Content: genai.Content{}}},
	}
}

func TestAssemble_NonStreaming(t *testing.T) {
	req := &genai.Request{Contents: "prompt", Stream: false}
	resp := genai.NewResponse(textChunk("Syllabus: Introduction to Go"))

	got, err := genai.Assemble(req, resp)
	require.NoError(t, err)
	assert.Equal(t, "Syllabus: Introduction to Go", got)
}

func TestAssemble_NonStreamingNoPayload(t *testing.T) {
	req := &genai.Request{Stream: false}
	resp := genai.NewResponse(&genai.GenerateResponse{})

	_, err := genai.Assemble(req, resp)
	require.ErrorIs(t, err, genai.ErrNoContent)
}

func TestAssemble_NonStreamingBlocked(t *testing.T) {
	req := &genai.Request{Stream: false}
	resp := genai.NewResponse(&genai.GenerateResponse{
		PromptFeedback: &genai.PromptFeedback{BlockReason: "SAFETY"},
	})

	_, err := genai.Assemble(req, resp)
	require.ErrorIs(t, err, genai.ErrNoContent)
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestAssemble_Streaming(t *testing.T) {
	req := &genai.Request{Stream: true}
	stream := newSliceStream(textChunk("one"), textChunk("two"), textChunk("three"))
	resp := genai.NewStreamResponse(stream)

	got, err := genai.Assemble(req, resp)
	require.NoError(t, err)
	assert.Equal(t, "one two three", got)
	assert.True(t, stream.closed)
}

func TestAssemble_StreamingMissingPayload(t *testing.T) {
	// A chunk without a payload contributes an empty placeholder, which the
	// space join turns into two consecutive spaces.
	req := &genai.Request{Stream: true}
	resp := genai.NewStreamResponse(newSliceStream(
		textChunk("Hello"), emptyChunk(), textChunk("world"),
	))

	got, err := genai.Assemble(req, resp)
	require.NoError(t, err)
	assert.Equal(t, "Hello  world", got)
}

func TestAssemble_StreamingEmpty(t *testing.T) {
	req := &genai.Request{Stream: true}
	resp := genai.NewStreamResponse(newSliceStream())

	got, err := genai.Assemble(req, resp)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestAssemble_StreamingTransportError(t *testing.T) {
	req := &genai.Request{Stream: true}
	stream := newSliceStream(textChunk("partial"))
	stream.failAt = 1
	stream.err = errors.New("connection reset")
	resp := genai.NewStreamResponse(stream)

	_, err := genai.Assemble(req, resp)
	require.EqualError(t, err, "connection reset")
}

func TestAssemble_Deterministic(t *testing.T) {
	req := &genai.Request{Stream: true}

	build := func() *genai.Response {
		return genai.NewStreamResponse(newSliceStream(
			textChunk("a"), emptyChunk(), textChunk("b"), textChunk("c"),
		))
	}

	first, err := genai.Assemble(req, build())
	require.NoError(t, err)
	second, err := genai.Assemble(req, build())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
