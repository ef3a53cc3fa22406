package validate

import (
	"fmt"
	"strings"

	"github.com/nickthelegend/podio-ai/internal/models"
)

// MaxScriptLines caps podcast script length.
const MaxScriptLines = 200

// Script validates and normalizes a podcast dialogue. Every line needs a
// speaker and text; a script with only one speaker is rejected because
// the alternating two-host format is the product.
func Script(lines []models.DialogueLine) ([]models.DialogueLine, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("script is empty")
	}
	if len(lines) > MaxScriptLines {
		lines = lines[:MaxScriptLines]
	}

	speakers := map[string]bool{}
	out := make([]models.DialogueLine, 0, len(lines))
	for i, l := range lines {
		l.Speaker = strings.TrimSpace(l.Speaker)
		l.Line = strings.TrimSpace(l.Line)
		if l.Speaker == "" {
			return nil, fmt.Errorf("line %d has no speaker", i)
		}
		if l.Line == "" {
			continue
		}
		speakers[l.Speaker] = true
		out = append(out, l)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("script has no spoken lines")
	}
	if len(speakers) < 2 {
		return nil, fmt.Errorf("script needs at least two speakers, got %d", len(speakers))
	}
	return out, nil
}
