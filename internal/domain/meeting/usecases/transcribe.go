package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting"
	"github.com/adelsonfagundes/ClareIA/internal/openai"
)

// TranscriptionClient is the part of the OpenAI client the transcription
// usecase needs.
type TranscriptionClient interface {
	CreateTranscription(ctx context.Context, req openai.TranscriptionRequest) (*openai.TranscriptionResult, error)
}

// Transcribe turns an audio file into a Transcript via the speech-to-text API.
type Transcribe struct {
	Client          TranscriptionClient
	DefaultModel    string
	DefaultLanguage string
	DefaultFormat   string
}

// TranscribeOptions override the configured defaults for one invocation.
type TranscribeOptions struct {
	Model    string
	Language string
	Format   string
	Prompt   string // contextual hint (proper names, technical terms)
}

var supportedAudioExts = map[string]bool{
	".mp3": true,
	".wav": true,
	".m4a": true,
}

// IsAudioFile reports whether the path has a supported audio extension.
func IsAudioFile(path string) bool {
	return supportedAudioExts[strings.ToLower(filepath.Ext(path))]
}

// Execute validates the input and the model/format pair, performs exactly one
// transcription call, and maps the API response to a Transcript.
func (t *Transcribe) Execute(ctx context.Context, audioPath string, opts TranscribeOptions) (*meeting.Transcript, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", audioPath)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not an audio file", audioPath)
	}
	if !IsAudioFile(audioPath) {
		return nil, fmt.Errorf("unsupported file type %q: use .mp3, .wav or .m4a", filepath.Ext(audioPath))
	}

	model := opts.Model
	if model == "" {
		model = t.DefaultModel
	}
	language := opts.Language
	if language == "" {
		language = t.DefaultLanguage
	}
	format := opts.Format
	if format == "" {
		format = t.DefaultFormat
	}

	// Reject invalid model/format pairs before touching the network.
	if err := openai.ValidateModelFormat(model, format); err != nil {
		return nil, err
	}

	slog.Info("starting transcription", "file", audioPath, "model", model, "format", format)

	result, err := t.Client.CreateTranscription(ctx, openai.TranscriptionRequest{
		FilePath:       audioPath,
		Model:          model,
		Language:       language,
		Prompt:         opts.Prompt,
		ResponseFormat: format,
	})
	if err != nil {
		return nil, err
	}

	transcript := &meeting.Transcript{
		Text:       result.Text,
		Language:   language,
		Duration:   result.Duration,
		SourcePath: audioPath,
	}
	if result.Language != "" {
		transcript.Language = result.Language
	}
	for _, seg := range result.Segments {
		transcript.Segments = append(transcript.Segments, meeting.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}

	slog.Info("transcription complete", "chars", len(transcript.Text), "segments", len(transcript.Segments))
	return transcript, nil
}

// SaveTranscript writes the transcript to outputPath. The extension selects
// the serialization: .json for the full structure, .srt/.vtt for subtitles
// (rendered from segments when present, otherwise the raw API text is
// written through), anything else for plain text. forceJSON overrides the
// extension and always writes JSON.
func SaveTranscript(t *meeting.Transcript, outputPath string, forceJSON bool) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(outputPath))
	var content []byte

	switch {
	case forceJSON || ext == ".json":
		data, err := t.JSON()
		if err != nil {
			return fmt.Errorf("serializing transcript: %w", err)
		}
		content = data
	case ext == ".srt" && t.HasSegments():
		content = []byte(t.SRT())
	case ext == ".vtt" && t.HasSegments():
		content = []byte(t.VTT())
	default:
		content = []byte(t.Text)
	}

	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	return nil
}
