package vertex

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/cakap/upskill/pkg/genai"
)

// dataPrefix marks SSE payload lines.
var dataPrefix = []byte("data:")

// sseStream decodes a server-sent-event response body into response chunks.
// It is lazy: each Next reads exactly one event from the wire.
type sseStream struct {
	body      io.ReadCloser
	br        *bufio.Reader
	closeOnce sync.Once
	closeErr  error
}

var _ genai.Stream = (*sseStream)(nil)

func newSSEStream(body io.ReadCloser) *sseStream {
	return &sseStream{body: body, br: bufio.NewReader(body)}
}

// Next blocks until the provider delivers the next chunk. Non-data lines
// (comments, blank keep-alives) are skipped. It returns io.EOF once the
// stream ends and closes the underlying body.
func (s *sseStream) Next() (*genai.GenerateResponse, error) {
	for {
		line, err := s.br.ReadBytes('\n')
		line = bytes.TrimSpace(line)

		if bytes.HasPrefix(line, dataPrefix) {
			data := bytes.TrimSpace(bytes.TrimPrefix(line, dataPrefix))
			if bytes.Equal(data, []byte("[DONE]")) {
				_ = s.Close()
				return nil, io.EOF
			}

			var chunk genai.GenerateResponse
			if derr := json.Unmarshal(data, &chunk); derr != nil {
				return nil, fmt.Errorf("vertex: decode chunk: %w", derr)
			}

			return &chunk, nil
		}

		if err == io.EOF {
			_ = s.Close()
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("vertex: read stream: %w", err)
		}
	}
}

// Close releases the underlying connection. Safe to call more than once.
func (s *sseStream) Close() error {
	s.closeOnce.Do(func() { s.closeErr = s.body.Close() })
	return s.closeErr
}
