package vertex

import (
	"context"
	"fmt"
	"strings"

	"github.com/cakap/upskill/pkg/genai"
	"github.com/cakap/upskill/pkg/genai/safety"
)

// modelPrefix is the publisher path prefix carried by fully qualified Gemini
// model identifiers.
const modelPrefix = "publishers/google/models/"

// Model is an immutable handle to one named Gemini model variant. The zero
// value is not usable; handles come from Client.Model.
type Model struct {
	client *Client
	name   string // e.g. "publishers/google/models/gemini-1.5-flash"
}

// Model returns an immutable handle for the named model variant. Short names
// get the publisher prefix; fully qualified identifiers pass through
// unchanged. Handles are constructed once at startup and reused for the life
// of the process.
func (c *Client) Model(name string) *Model {
	if !strings.HasPrefix(name, modelPrefix) {
		name = modelPrefix + name
	}
	return &Model{client: c, name: name}
}

// Name returns the fully qualified model identifier.
func (m *Model) Name() string {
	return m.name
}

// DisplayName returns a short label for UI display: the identifier with the
// publisher prefix stripped, wrapped in backticks as inline code.
func (m *Model) DisplayName() string {
	return "`" + strings.TrimPrefix(m.name, modelPrefix) + "`"
}

// Generate issues the request against this model and returns the response in
// the shape selected by req.Stream. The call blocks until the provider
// answers; in streaming mode each Next on the returned stream blocks until
// the next chunk arrives.
func (m *Model) Generate(ctx context.Context, req *genai.Request) (*genai.Response, error) {
	path := fmt.Sprintf("/v1/projects/%s/locations/%s/%s",
		m.client.project, m.client.region, m.name)
	payload := buildPayload(req)

	if req.Stream {
		stream, err := m.client.PostSSE(ctx, path+":streamGenerateContent?alt=sse", payload)
		if err != nil {
			return nil, fmt.Errorf("vertex: %w", err)
		}
		return genai.NewStreamResponse(stream), nil
	}

	var resp genai.GenerateResponse
	if err := m.client.PostJSON(ctx, path+":generateContent", payload, &resp); err != nil {
		return nil, fmt.Errorf("vertex: %w", err)
	}

	return genai.NewResponse(&resp), nil
}

// --- request types ---

type apiRequest struct {
	Contents         []apiContent        `json:"contents"`
	GenerationConfig apiGenerationConfig `json:"generationConfig"`
	SafetySettings   []safety.Setting    `json:"safetySettings,omitempty"`
}

type apiContent struct {
	Role  string    `json:"role"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

type apiGenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

func buildPayload(req *genai.Request) apiRequest {
	out := apiRequest{
		Contents: []apiContent{{
			Role:  "user",
			Parts: []apiPart{{Text: req.Contents}},
		}},
		GenerationConfig: apiGenerationConfig{
			MaxOutputTokens: req.Config.MaxOutputTokens,
		},
		SafetySettings: req.Safety,
	}

	if req.Config.Temperature != 0 {
		t := req.Config.Temperature
		out.GenerationConfig.Temperature = &t
	}

	return out
}
