package gemini

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01}

func TestExtractImageNoCandidates(t *testing.T) {
	_, err := extractImage(&genai.GenerateContentResponse{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates returned")
}

func TestExtractImageNoImagePart(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("sorry, text only")}}},
		},
	}
	_, err := extractImage(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image generated from API response")
}

func TestExtractImageNilContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
	_, err := extractImage(resp)
	assert.Error(t, err)
}

func TestExtractImageFirstBlobWins(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{
				genai.Text("here is your image"),
				genai.Blob{MIMEType: "image/png", Data: pngBytes},
				genai.Blob{MIMEType: "image/png", Data: []byte("second image, ignored")},
			}}},
		},
	}
	data, err := extractImage(resp)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestExtractImageDecodesBase64Payload(t *testing.T) {
	encoded := []byte(base64.StdEncoding.EncodeToString(pngBytes))
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{
				genai.Blob{MIMEType: "image/png", Data: encoded},
			}}},
		},
	}
	data, err := extractImage(resp)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestNormalizeImageDataKeepsRawBytes(t *testing.T) {
	// PNG magic is outside the base64 alphabet, so raw bytes pass through.
	assert.Equal(t, pngBytes, normalizeImageData(pngBytes))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "gemini-2.5-flash-image-preview")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
