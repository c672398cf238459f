package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/ascend-hq/ascend/internal/entity"
)

const defaultModel = "gemini-2.5-flash"

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Generator wraps the Google GenAI client behind the narrow interface the
// matcher needs.
type Generator struct {
	client    *genai.Client
	modelName string
}

func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Generator{client: client, modelName: model}, nil
}

func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || strings.TrimSpace(part.Text) == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(strings.TrimSpace(part.Text))
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

// AIMatcher ranks candidates with a Gemini prompt. The model's ranked order
// is preserved; scores are clamped to [0,1] before returning.
type AIMatcher struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewAIMatcher(generator contentGenerator, logger *zap.Logger) *AIMatcher {
	return &AIMatcher{generator: generator, logger: logger}
}

func (m *AIMatcher) Match(ctx context.Context, jobText string, resumes []entity.Resume, topK int) ([]Match, error) {
	topK = NormalizeTopK(topK)

	candidates := make(map[string]string, len(resumes))
	var catalog strings.Builder
	for _, resume := range resumes {
		candidates[resume.ID.String()] = resume.CandidateName
		fmt.Fprintf(&catalog, "- id: %s | name: %s | role: %s | notes: %s\n",
			resume.ID, resume.CandidateName, resume.Role, resume.Notes)
	}

	prompt := buildPrompt(jobText, catalog.String(), topK)

	m.logger.Debug("gemini match request",
		zap.Int("candidates", len(resumes)),
		zap.Int("top_k", topK),
	)

	raw, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	matches, err := parseMatches(raw, candidates)
	if err != nil {
		return nil, err
	}

	if len(matches) > topK {
		matches = matches[:topK]
	}

	return matches, nil
}

func buildPrompt(jobText, catalog string, topK int) string {
	return fmt.Sprintf(`You are a recruiting assistant. Rank the candidates below against the job description.

Job description:
%s

Candidates:
%s
Respond with ONLY a JSON array, best match first, at most %d entries, each entry:
{"id": "<candidate id>", "score": <0.0-1.0>, "why": "<one sentence>", "matched_skills": [...], "missing_skills": [...]}`,
		jobText, catalog, topK)
}

// parseMatches reads the model's JSON array leniently: scores arrive as
// numbers or strings, unknown candidate ids are dropped, optional fields
// default to empty.
func parseMatches(raw string, candidates map[string]string) ([]Match, error) {
	cleaned := extractJSON(raw)

	var entries []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &entries); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	matches := make([]Match, 0, len(entries))
	for _, entry := range entries {
		id := coerceString(entry["id"])
		name, known := candidates[id]
		if !known {
			continue
		}

		matches = append(matches, Match{
			ID:            id,
			CandidateName: name,
			Score:         ClampScore(coerceFloat(entry["score"])),
			Why:           coerceString(entry["why"]),
			MatchedSkills: coerceStrings(entry["matched_skills"]),
			MissingSkills: coerceStrings(entry["missing_skills"]),
		})
	}

	return matches, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s := coerceString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
