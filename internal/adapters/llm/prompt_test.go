package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compentube/compentube-server/internal/adapters/llm"
	"github.com/compentube/compentube-server/internal/domain"
)

func TestLengthInstruction(t *testing.T) {
	require.Equal(t,
		"Provide a concise summary of 9-10 sentences.",
		llm.LengthInstruction(domain.LengthShort),
	)
	require.Equal(t,
		"Provide a detailed and comprehensive summary. Use bullet points for key takeaways and bold important terms.",
		llm.LengthInstruction(domain.LengthDetailed),
	)
	// Total over its input: anything non-Short gets the detailed instruction.
	require.Equal(t,
		llm.LengthInstruction(domain.LengthDetailed),
		llm.LengthInstruction(domain.LengthMode("whatever")),
	)
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	a := llm.BuildPrompt("hello world transcript", "English", domain.LengthShort)
	b := llm.BuildPrompt("hello world transcript", "English", domain.LengthShort)
	require.Equal(t, a, b)

	expected := "Analyze the following YouTube video transcript and create a summary based on the user's requirements.\n\n" +
		"Transcript:\n---\nhello world transcript\n---\n\n" +
		"User Requirements:\n" +
		"1. Summary Length: Short. Provide a concise summary of 9-10 sentences.\n" +
		"2. Output Language: English.\n" +
		"3. Format: Use Markdown for clear formatting. Start with a title."
	require.Equal(t, expected, a)
}

func TestBuildPromptDetailed(t *testing.T) {
	p := llm.BuildPrompt("some transcript", "Spanish", domain.LengthDetailed)
	assert.Contains(t, p, "Summary Length: Detailed.")
	assert.Contains(t, p, "Use bullet points for key takeaways")
	assert.Contains(t, p, "Output Language: Spanish.")
}
