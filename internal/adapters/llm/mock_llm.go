package llm

import (
	"context"

	"github.com/compentube/compentube-server/internal/domain"
)

// MockGenerator returns a canned summary. Useful for local development
// without burning quota.
type MockGenerator struct {
	Reply string

	LastPrompt string
	Calls      int
}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		Reply: "# Summary\nThis is a mock summary of the requested video.",
	}
}

func (m *MockGenerator) Generate(_ context.Context, _ *domain.CredentialBundle, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	return m.Reply, nil
}
