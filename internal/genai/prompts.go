package genai

import "fmt"

func slidesPrompt(topic, style string, slideCount int) string {
	return fmt.Sprintf(`You are a presentation designer. Create a %d-slide deck about: %s

Visual style: %s

Return ONLY a JSON array of slide objects with these fields:
- "layoutType": one of "title", "content", "statistics", "conclusion"
- "title": short headline (required)
- "subtitle": optional tagline (title slides only)
- "bullets": array of short strings; for statistics slides each bullet is "VALUE: label", for example "85%%: Companies adopting AI by 2025"
- "speakerNotes": 2-4 sentences of narration for this slide

Rules:
- The first slide uses layoutType "title" and the last uses "conclusion".
- Statistics slides carry at most 4 bullets.
- No markdown, no code fences, JSON only.`, slideCount, topic, style)
}

func podcastPrompt(topic string, minutes int) string {
	return fmt.Sprintf(`Write a %d-minute podcast dialogue between two hosts, Alex and Sam, about: %s

Return ONLY a JSON array of objects with fields "speaker" ("Alex" or "Sam") and "line".
Alex drives the conversation, Sam adds color and asks questions. Keep lines short and conversational. No markdown, JSON only.`, minutes, topic)
}

func refinePrompt(current, instruction string) string {
	return fmt.Sprintf(`Here is a podcast script as a JSON array of {"speaker", "line"} objects:

%s

Rewrite it following this instruction: %s

Keep the same speakers and roughly the same length. Return ONLY the rewritten JSON array, no markdown.`, current, instruction)
}
