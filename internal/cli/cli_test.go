package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adelsonfagundes/ClareIA/config"
	"github.com/adelsonfagundes/ClareIA/internal/app"
	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting/usecases"
	"github.com/adelsonfagundes/ClareIA/internal/openai"
)

// countingClient fails the test if any network-facing call is made.
type countingClient struct {
	calls  int
	result *openai.TranscriptionResult
}

func (c *countingClient) CreateTranscription(_ context.Context, _ openai.TranscriptionRequest) (*openai.TranscriptionResult, error) {
	c.calls++
	if c.result == nil {
		return &openai.TranscriptionResult{Text: "ok"}, nil
	}
	return c.result, nil
}

type countingProvider struct {
	calls   int
	content string
}

func (p *countingProvider) GenerateStructured(_ context.Context, _ usecases.SummaryRequest) (string, error) {
	p.calls++
	return p.content, nil
}

func newTestDeps(cfg *config.Config, client usecases.TranscriptionClient, provider usecases.SummaryProvider) *Dependencies {
	transcribe := &usecases.Transcribe{
		Client:          client,
		DefaultModel:    cfg.TranscribeModel,
		DefaultLanguage: cfg.Language,
		DefaultFormat:   cfg.ResponseFormat,
	}
	return &Dependencies{
		Config: cfg,
		App: &app.App{
			Transcribe: transcribe,
			Summarize:  &usecases.Summarize{Provider: provider, Transcriber: transcribe, Temperature: cfg.Temperature},
			FollowUp:   &usecases.FollowUp{Provider: provider},
		},
	}
}

func testConfig(openAIKey string) *config.Config {
	return &config.Config{
		OpenAIAPIKey:    openAIKey,
		TranscribeModel: config.DefaultTranscribeModel,
		Language:        config.DefaultLanguage,
		ResponseFormat:  config.DefaultResponseFormat,
		SummaryProvider: config.ProviderOpenAI,
		SummaryModel:    config.DefaultSummaryModel,
		Temperature:     config.DefaultTemperature,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCommand(t *testing.T, deps *Dependencies, args ...string) error {
	t.Helper()
	root := NewRootCmd(deps)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestTranscribeMissingCredential(t *testing.T) {
	client := &countingClient{}
	deps := newTestDeps(testConfig(""), client, &countingProvider{})
	audio := writeFile(t, "meeting.mp3", "audio")

	err := runCommand(t, deps, "transcribe", audio)
	if !errors.Is(err, config.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if client.calls != 0 {
		t.Errorf("no transcription call may happen without a credential, got %d", client.calls)
	}
}

func TestTranscribeWritesOutput(t *testing.T) {
	client := &countingClient{result: &openai.TranscriptionResult{Text: "Olá, reunião."}}
	deps := newTestDeps(testConfig("sk-test"), client, &countingProvider{})
	audio := writeFile(t, "meeting.mp3", "audio")
	outPath := filepath.Join(t.TempDir(), "out.txt")

	if err := runCommand(t, deps, "transcribe", audio, "-o", outPath); err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if client.calls != 1 {
		t.Errorf("expected 1 transcription call, got %d", client.calls)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "Olá, reunião." {
		t.Errorf("unexpected output %q", data)
	}
}

func TestSummarizeMissingCredential(t *testing.T) {
	provider := &countingProvider{}
	deps := newTestDeps(testConfig(""), &countingClient{}, provider)
	transcript := writeFile(t, "meeting.txt", "Texto da reunião.")

	err := runCommand(t, deps, "summarize", transcript)
	if !errors.Is(err, config.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if provider.calls != 0 {
		t.Errorf("no summarization call may happen without a credential, got %d", provider.calls)
	}
}

func TestSummarizeTranscriptInput(t *testing.T) {
	client := &countingClient{}
	provider := &countingProvider{content: `{"summary": "Ata gerada.", "key_points": [], "decisions": [], "action_items": [], "insights": []}`}
	deps := newTestDeps(testConfig("sk-test"), client, provider)
	transcript := writeFile(t, "meeting.txt", "Texto da reunião.")
	outPath := filepath.Join(t.TempDir(), "ata.md")

	if err := runCommand(t, deps, "summarize", transcript, "-o", outPath); err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if client.calls != 0 {
		t.Errorf("transcript input must not trigger transcription, got %d calls", client.calls)
	}
	if provider.calls != 1 {
		t.Errorf("expected exactly 1 summarization call, got %d", provider.calls)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(data, []byte("Ata gerada.")) {
		t.Errorf("unexpected minutes content %q", data)
	}
}

func TestDoctorRunsWithoutCredentials(t *testing.T) {
	deps := newTestDeps(testConfig(""), &countingClient{}, &countingProvider{})
	if err := runCommand(t, deps, "doctor"); err != nil {
		t.Fatalf("doctor must not require credentials: %v", err)
	}
}
