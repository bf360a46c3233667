package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adelsonfagundes/ClareIA/internal/docx"
	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting"
)

// SummaryRequest is one structured-generation call to an LLM provider.
// Model may be empty to use the provider's configured default.
type SummaryRequest struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// SummaryProvider generates a JSON document from a system+user prompt pair.
// Implementations exist for the OpenAI chat API and for Gemini.
type SummaryProvider interface {
	GenerateStructured(ctx context.Context, req SummaryRequest) (string, error)
}

// Summarize derives structured meeting minutes from a transcript.
type Summarize struct {
	Provider    SummaryProvider
	Transcriber *Transcribe // used when the input path is an audio file
	Temperature float64
}

// SummarizeOptions override the configured defaults for one invocation.
type SummarizeOptions struct {
	Model        string
	Temperature  *float64
	ExtraContext string // participants, meeting goal, etc.
}

const summarySystemPrompt = `Você é um assistente especialista em reuniões corporativas.
Dado o transcript em português do Brasil, gere uma ata clara e objetiva.

Retorne um JSON válido com a seguinte estrutura:
{
    "title": "Título da reunião (opcional)",
    "summary": "Resumo executivo em português",
    "key_points": ["Lista de pontos principais discutidos"],
    "decisions": ["Lista de decisões tomadas"],
    "action_items": [
        {
            "description": "Tarefa a ser executada",
            "owner": "Responsável (opcional)",
            "due_date": "Prazo (opcional, formato AAAA-MM-DD ou texto)"
        }
    ],
    "insights": ["Lista de insights relevantes, métricas ou riscos identificados"]
}

Seja fiel ao conteúdo, use português natural e destaque decisões e tarefas importantes.
Retorne APENAS o JSON, sem explicações adicionais.`

// Execute performs exactly one summarization call and parses the result.
func (s *Summarize) Execute(ctx context.Context, transcript *meeting.Transcript, opts SummarizeOptions) (*meeting.MeetingSummary, error) {
	temperature := s.Temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	var user strings.Builder
	user.WriteString("Transcrição em português do Brasil abaixo. Extraia uma ata clara, decisões, itens de ação e insights.\n\n")
	if opts.ExtraContext != "" {
		fmt.Fprintf(&user, "Contexto adicional:\n%s\n\n", opts.ExtraContext)
	}
	fmt.Fprintf(&user, "Transcript:\n%s", transcript.Text)

	slog.Info("generating meeting minutes", "model", opts.Model, "temperature", temperature)

	content, err := s.Provider.GenerateStructured(ctx, SummaryRequest{
		Model:       opts.Model,
		System:      summarySystemPrompt,
		User:        user.String(),
		Temperature: temperature,
		MaxTokens:   4000,
	})
	if err != nil {
		return nil, err
	}

	summary, err := meeting.ParseSummaryJSON(content)
	if err != nil {
		return nil, fmt.Errorf("could not generate minutes: %w", err)
	}

	slog.Info("minutes generated", "action_items", len(summary.ActionItems), "decisions", len(summary.Decisions))
	return summary, nil
}

// ResolveTranscript loads a transcript from a .json/.txt file, or transcribes
// the input first when it is an audio file.
func (s *Summarize) ResolveTranscript(ctx context.Context, path string) (*meeting.Transcript, error) {
	if IsAudioFile(path) {
		if s.Transcriber == nil {
			return nil, fmt.Errorf("audio input %s requires a transcription client", path)
		}
		return s.Transcriber.Execute(ctx, path, TranscribeOptions{})
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".txt" {
		return nil, fmt.Errorf("unsupported input %q: use a transcript (.json/.txt) or an audio file (.mp3/.wav/.m4a)", path)
	}

	fallbackLanguage := "pt"
	if s.Transcriber != nil && s.Transcriber.DefaultLanguage != "" {
		fallbackLanguage = s.Transcriber.DefaultLanguage
	}
	return meeting.LoadTranscript(path, fallbackLanguage)
}

// SaveSummary writes the minutes to outputPath. The extension selects the
// serialization: .md for markdown, .docx for a Word document, anything else
// for indented JSON.
func SaveSummary(s *meeting.MeetingSummary, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".md":
		return os.WriteFile(outputPath, []byte(s.Markdown()), 0o644)
	case ".docx":
		return docx.WriteMinutes(s, outputPath)
	default:
		data, err := s.JSON()
		if err != nil {
			return fmt.Errorf("serializing summary: %w", err)
		}
		return os.WriteFile(outputPath, data, 0o644)
	}
}
