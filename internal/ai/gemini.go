package ai

import (
	"context"
	"errors"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	genai "google.golang.org/genai"
)

// Gemini implements Describer using Google's multimodal models.
type Gemini struct {
	client *genai.Client
	model  string

	// MaxWords caps the length of generated descriptions.
	MaxWords int
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model, MaxWords: 12}, nil
}

// Describe sends the image bytes inline and asks for a short factual
// description. Any failure is reported as an empty description so the
// caller falls back to its type-based defaults.
func (g *Gemini) Describe(ctx context.Context, imagePath string) (string, error) {
	if g.client == nil {
		return "", nil
	}
	b, err := os.ReadFile(imagePath)
	if err != nil || len(b) == 0 {
		return "", nil
	}
	mt := mime.TypeByExtension(filepath.Ext(imagePath))
	if mt == "" {
		mt = "image/png"
	}
	words := g.MaxWords
	if words <= 0 {
		words = 12
	}
	prompt := &genai.Content{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: "Describe this image for alt text in <= " + strconv.Itoa(words) + " words, factual, no embellishment."},
			{InlineData: &genai.Blob{MIMEType: mt, Data: b}},
		},
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{prompt}, nil)
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(res.Text()), nil
}
