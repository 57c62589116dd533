package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type GeminiService interface {
	AnalyzeText(ctx context.Context, prompt, resumeText string) (string, error)
	AnalyzeImage(ctx context.Context, prompt string, imageData []byte, imageMIME string) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
	log       *zap.SugaredLogger
}

// NewGeminiService constructs the client once; it is passed explicitly to the
// analyzer rather than held as package state.
func NewGeminiService(apiKey, modelName string, log *zap.SugaredLogger) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
		log:       log,
	}, nil
}

// AnalyzeText implements GeminiService. One blocking call, no retry.
func (g *geminiService) AnalyzeText(ctx context.Context, prompt, resumeText string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromText(resumeText),
	}

	return g.generate(ctx, parts)
}

// AnalyzeImage implements GeminiService.
func (g *geminiService) AnalyzeImage(ctx context.Context, prompt string, imageData []byte, imageMIME string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(imageData, imageMIME),
	}

	return g.generate(ctx, parts)
}

func (g *geminiService) generate(ctx context.Context, parts []*genai.Part) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, nil)
	if err != nil {
		g.log.Errorw("gemini request failed", "error", err)
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	g.log.Debugw("gemini response received", "length", len(text))
	return text, nil
}
