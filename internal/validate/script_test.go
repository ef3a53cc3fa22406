package validate

import (
	"testing"

	"github.com/nickthelegend/podio-ai/internal/models"
)

func TestScriptAcceptsTwoSpeakers(t *testing.T) {
	lines := []models.DialogueLine{
		{Speaker: "Alex", Line: "Welcome back to the show."},
		{Speaker: "Sam", Line: "Great to be here."},
	}
	out, err := Script(lines)
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("len = %d, want 2", len(out))
	}
}

func TestScriptRejectsSingleSpeaker(t *testing.T) {
	lines := []models.DialogueLine{
		{Speaker: "Alex", Line: "First."},
		{Speaker: "Alex", Line: "Second."},
	}
	if _, err := Script(lines); err == nil {
		t.Fatal("expected rejection of a one-speaker script")
	}
}

func TestScriptRejectsMissingSpeaker(t *testing.T) {
	lines := []models.DialogueLine{
		{Speaker: "Alex", Line: "Hello."},
		{Speaker: "  ", Line: "Anonymous line."},
	}
	if _, err := Script(lines); err == nil {
		t.Fatal("expected rejection for blank speaker")
	}
}

func TestScriptDropsEmptyLines(t *testing.T) {
	lines := []models.DialogueLine{
		{Speaker: "Alex", Line: "Hello."},
		{Speaker: "Sam", Line: "   "},
		{Speaker: "Sam", Line: "Hi."},
	}
	out, err := Script(lines)
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("len = %d, want 2 after dropping the blank line", len(out))
	}
}

func TestScriptRejectsEmpty(t *testing.T) {
	if _, err := Script(nil); err == nil {
		t.Fatal("expected error for empty script")
	}
}
