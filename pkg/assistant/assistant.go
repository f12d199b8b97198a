// Package assistant wires configuration, the Vertex client, and the memoized
// model handles together, and exposes the generate-and-assemble operation
// the UI calls.
package assistant

import (
	"context"

	"github.com/cakap/upskill/pkg/gcs"
	"github.com/cakap/upskill/pkg/genai"
	"github.com/cakap/upskill/pkg/genai/safety"
	"github.com/cakap/upskill/pkg/genai/vertex"
)

// Assistant owns the provider client and the two model handles. Handles are
// constructed once here, are read-only afterwards, and are reused across
// requests for the life of the process.
type Assistant struct {
	cfg     Config
	Fast    *vertex.Model
	Quality *vertex.Model
}

// New builds the Vertex client and the model handles from cfg.
func New(cfg Config) *Assistant {
	client := vertex.New(vertex.Config{
		Project:     cfg.Project,
		Region:      cfg.Region,
		AccessToken: cfg.AccessToken,
		Endpoint:    cfg.Endpoint,
	})

	return &Assistant{
		cfg:     cfg,
		Fast:    client.Model(cfg.FastModel),
		Quality: client.Model(cfg.QualityModel),
	}
}

// Models returns the selectable model handles, fast tier first.
func (a *Assistant) Models() []*vertex.Model {
	return []*vertex.Model{a.Fast, a.Quality}
}

// Temperature returns the configured sampling temperature.
func (a *Assistant) Temperature() float64 {
	return a.cfg.Temperature
}

// CatalogURL resolves the configured course catalog reference to a public
// HTTP link. It returns "" when no catalog is configured.
func (a *Assistant) CatalogURL() (string, error) {
	if a.cfg.CatalogURI == "" {
		return "", nil
	}
	return gcs.StorageURL(a.cfg.CatalogURI)
}

// Generate sends prompt to the given model and assembles the response into
// one string. The call blocks until the full response has arrived; streaming
// only changes how the provider delivers it.
func (a *Assistant) Generate(ctx context.Context, m *vertex.Model, prompt string) (string, error) {
	req := &genai.Request{
		Contents: prompt,
		Config: genai.GenerationConfig{
			Temperature:     a.cfg.Temperature,
			MaxOutputTokens: a.cfg.MaxOutputTokens,
		},
		Safety: safety.Defaults(),
		Stream: a.cfg.Stream,
	}

	resp, err := m.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	return genai.Assemble(req, resp)
}
