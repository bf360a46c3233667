package openai

import (
	"fmt"
	"strings"
)

// Response formats accepted by the transcription API.
const (
	FormatText        = "text"
	FormatJSON        = "json"
	FormatVerboseJSON = "verbose_json"
	FormatSRT         = "srt"
	FormatVTT         = "vtt"
)

// ResponseFormats lists every format the transcription API knows about.
var ResponseFormats = []string{FormatText, FormatJSON, FormatVerboseJSON, FormatSRT, FormatVTT}

var basicFormats = map[string]bool{
	FormatJSON: true,
	FormatText: true,
}

var whisperFormats = map[string]bool{
	FormatText:        true,
	FormatJSON:        true,
	FormatVerboseJSON: true,
	FormatSRT:         true,
	FormatVTT:         true,
}

func isGPT4oTranscribe(model string) bool {
	m := strings.ToLower(model)
	return strings.HasPrefix(m, "gpt-4o") && strings.Contains(m, "transcribe")
}

func isWhisperModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), "whisper")
}

// ValidateModelFormat rejects (model, format) combinations the API would
// refuse, before any network call is made. The gpt-4o transcription models
// only produce json/text; the legacy whisper models additionally support
// verbose_json and the subtitle formats.
func ValidateModelFormat(model, format string) error {
	if !whisperFormats[format] {
		return fmt.Errorf("unknown response format %q: use one of: %s", format, strings.Join(ResponseFormats, ", "))
	}

	switch {
	case isGPT4oTranscribe(model):
		if !basicFormats[format] {
			return fmt.Errorf(
				"model %q does not support format %q: use 'json' or 'text', or switch to 'whisper-1' for 'verbose_json'/'srt'/'vtt'",
				model, format,
			)
		}
	case isWhisperModel(model):
		// All known formats are fine.
	default:
		if !basicFormats[format] {
			return fmt.Errorf(
				"format %q may not be supported by model %q: use 'json' or 'text', or choose 'whisper-1' for advanced formats",
				format, model,
			)
		}
	}
	return nil
}
