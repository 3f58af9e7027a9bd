package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/raushankrgupta/virtual-tryon-api/utils"
)

const tryOnPrompt = `Please create a virtual try-on image where the person in the first image is wearing the clothing item from the second image.
Make it look realistic and natural. The clothing should fit the person's body shape and size appropriately.
Return the result as a high-quality image.`

// Client generates virtual try-on images using the Gemini API.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient creates a Gemini client. The API key is required.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{genai: gc, model: model}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.genai.Close()
}

// GenerateTryOn sends both images to the model and returns the generated
// composite image bytes. Every failure mode (transport error, empty
// response, no image part) comes back as an error; nothing panics past
// this boundary.
func (c *Client) GenerateTryOn(ctx context.Context, personImage, clothingImage []byte, personFilename, clothingFilename string) ([]byte, error) {
	model := c.genai.GenerativeModel(c.model)
	model.SetTemperature(0.4)
	model.SetTopP(1.0)
	model.SetTopK(32)
	model.SetMaxOutputTokens(4096)

	// Part order matters: the labels tell the model which image is which.
	parts := []genai.Part{
		genai.Blob{MIMEType: utils.ImageMIMEType(personFilename), Data: personImage},
		genai.Text("This is the person/model image."),
		genai.Blob{MIMEType: utils.ImageMIMEType(clothingFilename), Data: clothingImage},
		genai.Text("This is the clothing item image."),
		genai.Text(tryOnPrompt),
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return extractImage(resp)
}

// extractImage picks the first inline image payload out of the response.
// The API contract for multiple candidates or multiple image parts is
// unclear, so the first match wins.
func extractImage(resp *genai.GenerateContentResponse) ([]byte, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no image generated from API response")
	}
	for _, part := range candidate.Content.Parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return normalizeImageData(blob.Data), nil
		}
	}
	return nil, fmt.Errorf("no image generated from API response")
}

// normalizeImageData decodes payloads the API delivered as base64 text.
// Real image bytes start with magic bytes outside the base64 alphabet,
// so a successful decode means the payload really was encoded.
func normalizeImageData(data []byte) []byte {
	if decoded, err := base64.StdEncoding.DecodeString(string(data)); err == nil {
		return decoded
	}
	return data
}
