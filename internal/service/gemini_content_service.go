package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/config"
	"github.com/vocabquest/server/internal/model"
	"google.golang.org/api/option"
)

// ContentGenerator produces study material for a unit's word list. The
// Gemini implementation is best-effort: it may fail or rate-limit, and the
// content service falls back to cached output when it does.
type ContentGenerator interface {
	GenerateEnrichment(ctx context.Context, words []model.Word) (string, error)
	GenerateReading(ctx context.Context, words []model.Word) (string, error)
}

type geminiContentGenerator struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiContentGenerator(cfg *config.Config) (ContentGenerator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Content generation will rely on cached content only.")
		return &geminiContentGenerator{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	genModel := client.GenerativeModel("gemini-1.5-flash")
	return &geminiContentGenerator{client: genModel, cfg: cfg}, nil
}

// GenerateEnrichment asks for definitions, synonyms, antonyms and an example
// sentence per word, as a JSON document keyed by word text.
func (s *geminiContentGenerator) GenerateEnrichment(ctx context.Context, words []model.Word) (string, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a vocabulary tutor preparing study material for exam candidates.\n")
	prompt.WriteString("For each of the following words, produce a concise learner-friendly definition, ")
	prompt.WriteString("up to three synonyms, up to three antonyms, and one example sentence.\n\n")
	prompt.WriteString("Words:\n")
	for _, w := range words {
		prompt.WriteString("- ")
		prompt.WriteString(w.Text)
		prompt.WriteString("\n")
	}
	prompt.WriteString(`
Respond with ONLY a JSON object of this exact shape, no prose before or after:
{"words":[{"word":"...","definition":"...","synonyms":["..."],"antonyms":["..."],"example":"..."}]}
`)
	return s.generateJSON(ctx, prompt.String())
}

// GenerateReading asks for a short passage that uses the unit's words plus
// comprehension questions about it.
func (s *geminiContentGenerator) GenerateReading(ctx context.Context, words []model.Word) (string, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a vocabulary tutor preparing reading comprehension material for exam candidates.\n")
	prompt.WriteString("Write a short passage (120-180 words) that naturally uses as many of the following words as possible, ")
	prompt.WriteString("then four multiple-choice comprehension questions about the passage, each with four options and one correct answer.\n\n")
	prompt.WriteString("Words:\n")
	for _, w := range words {
		prompt.WriteString("- ")
		prompt.WriteString(w.Text)
		prompt.WriteString("\n")
	}
	prompt.WriteString(`
Respond with ONLY a JSON object of this exact shape, no prose before or after:
{"passage":"...","questions":[{"question":"...","options":["...","...","...","..."],"answer_index":0}]}
`)
	return s.generateJSON(ctx, prompt.String())
}

func (s *geminiContentGenerator) generateJSON(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during content generation")
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	payload := stripCodeFence(out.String())
	if payload == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	if !json.Valid([]byte(payload)) {
		log.Warn().Str("raw", payload).Msg("Gemini response is not valid JSON")
		return "", fmt.Errorf("gemini response is not valid JSON")
	}
	return payload, nil
}

// stripCodeFence removes a ```json ... ``` wrapper the model sometimes adds
// despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
