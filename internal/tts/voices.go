package tts

// Per-language default voice assignments for the two podcast hosts.
// Callers may override any speaker explicitly; these only fill the gaps.
var languageVoices = map[string]SpeakerVoices{
	"en-US": {
		"Alex": "21m00Tcm4TlvDq8ikWAM",
		"Sam":  "TxGEqnHWrfWFTfGW9XjX",
	},
	"hi-IN": {
		"Alex": "zT03pEAEi0VHKciJODfn",
		"Sam":  "1qEiC6qsybMkmnNdVMbK",
	},
	"es-ES": {
		"Alex": "VR6AewLTigWG4xSOukaG",
		"Sam":  "pNInz6obpgDQGcFmaJgB",
	},
}

const defaultLanguage = "en-US"

// DefaultVoices returns the per-speaker voice defaults for a language.
// Unknown languages fall back to the English defaults.
func DefaultVoices(language string) SpeakerVoices {
	if v, ok := languageVoices[language]; ok {
		return v
	}
	return languageVoices[defaultLanguage]
}

// ResolveVoices merges an explicit speaker-voice mapping over the
// language defaults. Explicit assignments always win.
func ResolveVoices(language string, explicit SpeakerVoices) SpeakerVoices {
	resolved := SpeakerVoices{}
	for speaker, voice := range DefaultVoices(language) {
		resolved[speaker] = voice
	}
	for speaker, voice := range explicit {
		if voice != "" {
			resolved[speaker] = voice
		}
	}
	return resolved
}
