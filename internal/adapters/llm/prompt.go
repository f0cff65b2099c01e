package llm

import (
	"fmt"

	"github.com/compentube/compentube-server/internal/domain"
)

// The instruction text is a fixed lookup by length mode, never derived at
// runtime.
const (
	shortInstruction    = "Provide a concise summary of 9-10 sentences."
	detailedInstruction = "Provide a detailed and comprehensive summary. Use bullet points for key takeaways and bold important terms."
)

const promptTemplate = "Analyze the following YouTube video transcript and create a summary based on the user's requirements.\n\n" +
	"Transcript:\n---\n%s\n---\n\n" +
	"User Requirements:\n" +
	"1. Summary Length: %s. %s\n" +
	"2. Output Language: %s.\n" +
	"3. Format: Use Markdown for clear formatting. Start with a title."

// LengthInstruction is total over the defined modes: Short gets the
// short-form instruction, everything else the detailed one.
func LengthInstruction(mode domain.LengthMode) string {
	if mode == domain.LengthShort {
		return shortInstruction
	}
	return detailedInstruction
}

// BuildPrompt composes the generation prompt deterministically from the
// transcript, the requested output language and the length mode.
func BuildPrompt(transcript, language string, mode domain.LengthMode) string {
	return fmt.Sprintf(promptTemplate, transcript, mode, LengthInstruction(mode), language)
}
