package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/compentube/compentube-server/internal/adapters/identity"
	"github.com/compentube/compentube-server/internal/domain"
	"github.com/compentube/compentube-server/internal/observability"
)

const defaultGeminiBase = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Generative Language API authorized with the
// session's delegated tokens. One request per Generate call, no retries.
type GeminiClient struct {
	model   string
	baseURL string
}

func NewGeminiClient(model string) *GeminiClient {
	return &GeminiClient{
		model:   model,
		baseURL: defaultGeminiBase,
	}
}

// NewGeminiClientWithBase points the client at a different endpoint, used by
// tests to target a local server.
func NewGeminiClientWithBase(model, baseURL string) *GeminiClient {
	return &GeminiClient{
		model:   model,
		baseURL: baseURL,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateCandidate struct {
	Content generateContent `json:"content"`
}

type generateResponse struct {
	Candidates []generateCandidate `json:"candidates"`
}

func (c *GeminiClient) Generate(ctx context.Context, creds *domain.CredentialBundle, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %w", domain.ErrGenerationFailed, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %w", domain.ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := oauth2.NewClient(ctx, identity.TokenSource(creds))
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Upstream bodies stay in the server log, never in the client payload.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		observability.LoggerFromContext(ctx).Error("gemini call failed",
			"status", resp.StatusCode,
			"body", string(detail),
		)
		return "", fmt.Errorf("%w: upstream status %d", domain.ErrGenerationFailed, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding response: %w", domain.ErrGenerationFailed, err)
	}

	return firstCandidateText(out)
}

// firstCandidateText extracts the first candidate's text, failing closed when
// the response carries none.
func firstCandidateText(out generateResponse) (string, error) {
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: response carried no candidates", domain.ErrGenerationFailed)
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("%w: candidate text is empty", domain.ErrGenerationFailed)
	}
	return text, nil
}
