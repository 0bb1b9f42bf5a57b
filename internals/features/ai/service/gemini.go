// file: internals/features/ai/service/gemini.go

// Package service porte l'appel Gemini et le découpage de sa réponse en
// sections de plan de leçon.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModelName = "gemini-1.5-flash-latest"

var ErrEmptyCompletion = errors.New("réponse Gemini vide")

// Generator enveloppe le client Gemini. Un Generator nil signifie que le
// service IA est désactivé (clé API absente).
type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Generator{
		client: client,
		model:  client.GenerativeModel(geminiModelName),
	}, nil
}

func (g *Generator) Close() error {
	return g.client.Close()
}

// GenerateLessonText envoie le prompt et concatène les parties texte de
// la première réponse candidate.
func (g *Generator) GenerateLessonText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return sb.String(), nil
}
