package genai

import (
	"errors"
	"io"
	"strings"
)

// Assemble normalizes either response shape into one string.
//
// Non-streamed responses return their payload verbatim; a missing payload
// propagates to the caller unrecovered. Streamed responses are drained in
// arrival order and the chunk texts joined with a single space. A chunk
// without a usable text payload contributes an empty string instead of
// aborting the rest of the stream; any other failure (transport, decode)
// propagates immediately.
func Assemble(req *Request, resp *Response) (string, error) {
	if !req.Stream {
		return resp.Text()
	}

	stream := resp.Chunks()
	defer func() { _ = stream.Close() }()

	var parts []string
	for {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		text, err := chunk.Text()
		if errors.Is(err, ErrNoContent) {
			parts = append(parts, "")
			continue
		}
		if err != nil {
			return "", err
		}

		parts = append(parts, text)
	}

	return strings.Join(parts, " "), nil
}
