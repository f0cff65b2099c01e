package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/compentube/compentube-server/internal/domain"
)

// GenAIClient is the service-credential generation backend: it authenticates
// with the deployment's own API key instead of the user's delegated tokens,
// for setups where users have not granted the generative-language scope.
type GenAIClient struct {
	client *genai.Client
	model  string
}

func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required for the genai backend")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GenAIClient{
		client: client,
		model:  model,
	}, nil
}

// Generate implements domain.TextGenerator. Session credentials are ignored;
// this backend authenticates as the service.
func (g *GenAIClient) Generate(ctx context.Context, _ *domain.CredentialBundle, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("%w: response carried no candidates", domain.ErrGenerationFailed)
	}

	return text, nil
}
