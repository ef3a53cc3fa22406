package tts

import "testing"

func TestDefaultVoicesSelectsLanguage(t *testing.T) {
	en := DefaultVoices("en-US")
	hi := DefaultVoices("hi-IN")

	if en["Alex"] == "" || hi["Alex"] == "" {
		t.Fatal("both languages must assign a voice to Alex")
	}
	if en["Alex"] == hi["Alex"] || en["Sam"] == hi["Sam"] {
		t.Error("hi-IN must select different voices than en-US")
	}
}

func TestDefaultVoicesUnknownLanguageFallsBack(t *testing.T) {
	got := DefaultVoices("xx-XX")
	want := DefaultVoices("en-US")
	if got["Alex"] != want["Alex"] || got["Sam"] != want["Sam"] {
		t.Errorf("unknown language resolved to %v, want English defaults %v", got, want)
	}
}

func TestResolveVoicesExplicitWins(t *testing.T) {
	resolved := ResolveVoices("hi-IN", SpeakerVoices{"Alex": "custom-voice"})

	if resolved["Alex"] != "custom-voice" {
		t.Errorf("Alex = %q, want explicit custom-voice", resolved["Alex"])
	}
	if resolved["Sam"] != DefaultVoices("hi-IN")["Sam"] {
		t.Errorf("Sam = %q, want hi-IN default", resolved["Sam"])
	}
}

func TestResolveVoicesIgnoresEmptyExplicit(t *testing.T) {
	resolved := ResolveVoices("en-US", SpeakerVoices{"Alex": ""})
	if resolved["Alex"] != DefaultVoices("en-US")["Alex"] {
		t.Errorf("empty explicit voice must not clobber the default, got %q", resolved["Alex"])
	}
}

func TestResolveVoicesDoesNotMutateDefaults(t *testing.T) {
	before := DefaultVoices("en-US")["Alex"]
	_ = ResolveVoices("en-US", SpeakerVoices{"Alex": "override"})
	if DefaultVoices("en-US")["Alex"] != before {
		t.Error("ResolveVoices mutated the shared default table")
	}
}
