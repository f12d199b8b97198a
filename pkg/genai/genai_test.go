package genai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cakap/upskill/pkg/genai"
)

func TestGenerateResponse_TextConcatenatesParts(t *testing.T) {
	r := &genai.GenerateResponse{
		Candidates: []genai.Candidate{{
			Content: genai.Content{Parts: []genai.Part{
				{Text: "Module 1: "},
				{Text: "Foundations"},
			}},
		}},
	}

	got, err := r.Text()
	require.NoError(t, err)
	assert.Equal(t, "Module 1: Foundations", got)
}

func TestGenerateResponse_TextFirstCandidateOnly(t *testing.T) {
	r := &genai.GenerateResponse{
		Candidates: []genai.Candidate{
			{Content: genai.Content{Parts: []genai.Part{{Text: "first"}}}},
			{Content: genai.Content{Parts: []genai.Part{{Text: "second"}}}},
		},
	}

	got, err := r.Text()
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestGenerateResponse_TextNoCandidates(t *testing.T) {
	_, err := (&genai.GenerateResponse{}).Text()
	assert.ErrorIs(t, err, genai.ErrNoContent)
}

func TestGenerateResponse_TextNoParts(t *testing.T) {
	r := &genai.GenerateResponse{
		Candidates: []genai.Candidate{{Content: genai.Content{Role: "model"}}},
	}

	_, err := r.Text()
	assert.ErrorIs(t, err, genai.ErrNoContent)
}

func TestResponse_TextOnStreamedResponse(t *testing.T) {
	resp := genai.NewStreamResponse(newSliceStream())

	_, err := resp.Text()
	require.Error(t, err)
	assert.NotNil(t, resp.Chunks())
}
