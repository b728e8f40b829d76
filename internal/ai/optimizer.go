package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultModel is the Gemini model used for resume optimization.
const DefaultModel = "gemini-2.5-flash"

// maxConcurrentSectionCalls bounds the fan-out of the per-section path.
const maxConcurrentSectionCalls = 4

// Optimizer rewrites resume content without changing its structure.
type Optimizer interface {
	// Optimize returns an enhanced copy of the resume. On failure the
	// original data is returned unchanged together with the error, so
	// callers can degrade to un-optimized rendering.
	Optimize(ctx context.Context, data *types.ResumeData) (*types.ResumeData, error)
	Close() error
}

// generateFunc issues one model call. jsonMode requests a JSON response.
type generateFunc func(ctx context.Context, prompt string, jsonMode bool) (string, error)

// GeminiOptimizer implements Optimizer on Google Gemini.
type GeminiOptimizer struct {
	client   *genai.Client
	generate generateFunc
	cache    *responseCache
}

// Config holds optimizer configuration.
type Config struct {
	Model    string
	CacheTTL time.Duration
}

// NewGeminiOptimizer creates an optimizer backed by the Gemini API.
func NewGeminiOptimizer(ctx context.Context, apiKey string, cfg Config) (*GeminiOptimizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	o := &GeminiOptimizer{
		client: client,
		cache:  newResponseCache(cfg.CacheTTL),
	}
	o.generate = func(ctx context.Context, prompt string, jsonMode bool) (string, error) {
		model := client.GenerativeModel(cfg.Model)
		model.SetTemperature(0.7)
		if jsonMode {
			model.ResponseMIMEType = "application/json"
		}
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
		return extractText(resp)
	}
	return o, nil
}

// Close releases the underlying API client.
func (o *GeminiOptimizer) Close() error {
	if o.client != nil {
		return o.client.Close()
	}
	return nil
}

// Optimize enhances the resume with a single whole-document rewrite. If
// the model response does not survive structure validation, it degrades
// to independent per-section rewrites before giving up.
func (o *GeminiOptimizer) Optimize(ctx context.Context, data *types.ResumeData) (*types.ResumeData, error) {
	if data == nil {
		return nil, &ErrOptimize{Message: "no resume data"}
	}

	input, err := json.Marshal(data)
	if err != nil {
		return data, &ErrOptimize{Message: "failed to encode resume", Cause: err}
	}

	key := cacheKey("optimize-resume", string(input))
	if cached, ok := o.cache.get(key); ok {
		if optimized := parseOptimized(cached, data); optimized != nil {
			return optimized, nil
		}
	}

	prompt := prompts.Format(prompts.MustGet("optimize.json", "optimize-resume"), map[string]string{
		"Resume": string(input),
	})

	raw, err := o.generate(ctx, prompt, true)
	if err == nil {
		if optimized := parseOptimized(raw, data); optimized != nil {
			o.cache.set(key, cleanJSONBlock(raw))
			return optimized, nil
		}
		log.Printf("[AI] whole-resume rewrite failed structure validation, retrying per section")
	} else {
		log.Printf("[AI] whole-resume rewrite failed: %v", err)
	}

	optimized, sectionErr := o.optimizeSections(ctx, data)
	if sectionErr != nil {
		return data, sectionErr
	}
	return optimized, nil
}

// parseOptimized decodes a model response and verifies it kept the input
// structure: same sections present, same entry counts. Returns nil when
// the response cannot be trusted.
func parseOptimized(raw string, original *types.ResumeData) *types.ResumeData {
	var out types.ResumeData
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &out); err != nil {
		return nil
	}
	if !sameStructure(original, &out) {
		return nil
	}
	return &out
}

// sameStructure checks that the optimized resume has the same sections
// and entry counts as the input.
func sameStructure(a, b *types.ResumeData) bool {
	if (a.PersonalInfo == nil) != (b.PersonalInfo == nil) {
		return false
	}
	if (a.Summary == "") != (b.Summary == "") {
		return false
	}
	if len(a.Experience) != len(b.Experience) ||
		len(a.Education) != len(b.Education) ||
		len(a.Skills) != len(b.Skills) ||
		len(a.Projects) != len(b.Projects) ||
		len(a.Certifications) != len(b.Certifications) {
		return false
	}
	for i := range a.Experience {
		if len(a.Experience[i].Bullets) != len(b.Experience[i].Bullets) {
			return false
		}
	}
	return true
}

// optimizeSections rewrites the summary and each experience entry's
// bullets as independent model calls. Each call touches a distinct part
// of the output copy, so the goroutines never write the same field.
func (o *GeminiOptimizer) optimizeSections(ctx context.Context, data *types.ResumeData) (*types.ResumeData, error) {
	out := data.Clone()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSectionCalls)

	if out.Summary != "" {
		g.Go(func() error {
			improved, err := o.improveSummary(ctx, out.Summary)
			if err != nil {
				return err
			}
			out.Summary = improved
			return nil
		})
	}

	for i := range out.Experience {
		if len(out.Experience[i].Bullets) == 0 {
			continue
		}
		entry := &out.Experience[i]
		g.Go(func() error {
			enhanced, err := o.enhanceBullets(ctx, entry.Position, entry.Company, entry.Bullets)
			if err != nil {
				return err
			}
			entry.Bullets = enhanced
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, &ErrOptimize{Message: "section rewrite failed", Cause: err}
	}
	return out, nil
}

func (o *GeminiOptimizer) improveSummary(ctx context.Context, summary string) (string, error) {
	key := cacheKey("improve-summary", summary)
	if cached, ok := o.cache.get(key); ok {
		return cached, nil
	}

	prompt := prompts.Format(prompts.MustGet("optimize.json", "improve-summary"), map[string]string{
		"Summary": summary,
	})
	raw, err := o.generate(ctx, prompt, false)
	if err != nil {
		return "", err
	}

	improved := strings.TrimSpace(raw)
	if improved == "" {
		improved = summary
	}
	o.cache.set(key, improved)
	return improved, nil
}

func (o *GeminiOptimizer) enhanceBullets(ctx context.Context, position, company string, bullets []string) ([]string, error) {
	encoded, err := json.Marshal(bullets)
	if err != nil {
		return nil, err
	}

	key := cacheKey("enhance-bullets", position, company, string(encoded))
	if cached, ok := o.cache.get(key); ok {
		var out []string
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	}

	prompt := prompts.Format(prompts.MustGet("optimize.json", "enhance-bullets"), map[string]string{
		"Position": position,
		"Company":  company,
		"Bullets":  string(encoded),
	})
	raw, err := o.generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}

	var enhanced []string
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &enhanced); err != nil {
		return nil, fmt.Errorf("bullet rewrite returned invalid JSON: %w", err)
	}
	if len(enhanced) != len(bullets) {
		return nil, fmt.Errorf("bullet rewrite changed entry count: got %d, want %d", len(enhanced), len(bullets))
	}

	o.cache.set(key, cleanJSONBlock(raw))
	return enhanced, nil
}

// extractText pulls the text content out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty model response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("model response contained no text")
	}
	return sb.String(), nil
}
