// Package genai defines the request and response model shared by generative
// model clients, plus the assembler that normalizes streamed and non-streamed
// responses into a single string.
package genai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cakap/upskill/pkg/genai/safety"
)

// ErrNoContent is returned when a response or chunk carries no usable text
// payload (provider-side filtering, a safety block, or an empty delta).
var ErrNoContent = errors.New("genai: no content in response")

// GenerationConfig holds sampling parameters for a generate call.
// A zero MaxOutputTokens means "use the provider default".
type GenerationConfig struct {
	Temperature     float64
	MaxOutputTokens int
}

// Request describes one generate call. Contents is the full prompt text; it
// is sent to the provider as-is.
type Request struct {
	Contents string
	Config   GenerationConfig
	Safety   []safety.Setting
	Stream   bool
}

// GenerateResponse mirrors the Gemini generateContent response payload. A
// streamed response delivers an ordered sequence of these, each carrying a
// partial delta in the same shape.
type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usageMetadata,omitempty"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// Content holds the parts of a candidate.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts,omitempty"`
}

// Part is one content fragment. Only text parts are produced here.
type Part struct {
	Text string `json:"text,omitempty"`
}

// PromptFeedback reports provider-side filtering of the prompt.
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// UsageMetadata reports token accounting for the call.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// Text returns the first candidate's text, concatenating its parts. It
// returns ErrNoContent when no candidate carries a part, wrapping the block
// reason when the provider reported one.
func (r *GenerateResponse) Text() (string, error) {
	if len(r.Candidates) == 0 {
		if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w (block reason: %s)", ErrNoContent, r.PromptFeedback.BlockReason)
		}
		return "", ErrNoContent
	}

	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", ErrNoContent
	}

	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}

// Stream is a finite, non-restartable sequence of response chunks. Next
// blocks until the provider delivers the next chunk and returns io.EOF once
// the stream ends. Close releases the underlying connection; calling it
// after io.EOF is a no-op.
type Stream interface {
	Next() (*GenerateResponse, error)
	Close() error
}

// Response holds the provider's answer to a Request. Exactly one shape is
// populated, matching Request.Stream.
type Response struct {
	payload *GenerateResponse
	stream  Stream
}

// NewResponse wraps a resolved (non-streamed) payload.
func NewResponse(p *GenerateResponse) *Response {
	return &Response{payload: p}
}

// NewStreamResponse wraps a streamed response.
func NewStreamResponse(s Stream) *Response {
	return &Response{stream: s}
}

// Text returns the resolved payload's text. It errors on streamed responses,
// which must be drained via Chunks.
func (r *Response) Text() (string, error) {
	if r.payload == nil {
		return "", errors.New("genai: response is streamed; use Chunks")
	}
	return r.payload.Text()
}

// Chunks returns the stream backing this response, or nil when the response
// was not streamed.
func (r *Response) Chunks() Stream {
	return r.stream
}
