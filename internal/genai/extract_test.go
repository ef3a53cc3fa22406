package genai

import "testing"

func TestExtractJSONPlainArray(t *testing.T) {
	got, err := ExtractJSON(`[{"title":"A"},{"title":"B"}]`)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got != `[{"title":"A"},{"title":"B"}]` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONStripsFences(t *testing.T) {
	in := "```json\n[{\"title\":\"A\"}]\n```"
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got != `[{"title":"A"}]` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONIgnoresSurroundingProse(t *testing.T) {
	in := "Here is your deck:\n[{\"title\":\"A\"}]\nLet me know if you want changes."
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got != `[{"title":"A"}]` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONBracketsInsideStrings(t *testing.T) {
	in := `[{"title":"plans ] and [ ideas"}]`
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got != in {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONObjectDocument(t *testing.T) {
	in := `{"slides":[{"title":"A"}]}`
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got != in {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONNoDocument(t *testing.T) {
	if _, err := ExtractJSON("sorry, I cannot help with that"); err == nil {
		t.Fatal("expected error for prose-only response")
	}
}

func TestExtractJSONUnterminated(t *testing.T) {
	if _, err := ExtractJSON(`[{"title":"A"`); err == nil {
		t.Fatal("expected error for truncated document")
	}
}
