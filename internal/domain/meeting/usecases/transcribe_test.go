package usecases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting"
	"github.com/adelsonfagundes/ClareIA/internal/openai"
)

// fakeTranscriptionClient records requests and returns a canned result.
type fakeTranscriptionClient struct {
	calls   int
	lastReq openai.TranscriptionRequest
	result  *openai.TranscriptionResult
	err     error
}

func (f *fakeTranscriptionClient) CreateTranscription(_ context.Context, req openai.TranscriptionRequest) (*openai.TranscriptionResult, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func writeAudioFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write audio file: %v", err)
	}
	return path
}

func newTranscribe(client TranscriptionClient) *Transcribe {
	return &Transcribe{
		Client:          client,
		DefaultModel:    "gpt-4o-transcribe",
		DefaultLanguage: "pt",
		DefaultFormat:   "json",
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"meeting.mp3", true},
		{"meeting.WAV", true},
		{"/tmp/dir/meeting.m4a", true},
		{"meeting.txt", false},
		{"meeting.json", false},
		{"meeting", false},
		{"meeting.ogg", false},
	}
	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTranscribeExecute(t *testing.T) {
	client := &fakeTranscriptionClient{
		result: &openai.TranscriptionResult{
			Text:     "Olá, bom dia.",
			Language: "portuguese",
			Duration: 8.4,
			Segments: []openai.TranscriptionSegment{
				{Start: 0, End: 8.4, Text: "Olá, bom dia."},
			},
		},
	}
	uc := newTranscribe(client)
	path := writeAudioFile(t, "meeting.mp3")

	transcript, err := uc.Execute(context.Background(), path, TranscribeOptions{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if client.calls != 1 {
		t.Errorf("expected exactly 1 transcription call, got %d", client.calls)
	}
	if client.lastReq.Model != "gpt-4o-transcribe" || client.lastReq.Language != "pt" || client.lastReq.ResponseFormat != "json" {
		t.Errorf("defaults not applied: %+v", client.lastReq)
	}
	if transcript.Text != "Olá, bom dia." {
		t.Errorf("unexpected text %q", transcript.Text)
	}
	// API-reported language wins over the requested one.
	if transcript.Language != "portuguese" {
		t.Errorf("expected API language, got %q", transcript.Language)
	}
	if transcript.Duration != 8.4 || len(transcript.Segments) != 1 {
		t.Errorf("segments/duration not mapped: %+v", transcript)
	}
	if transcript.SourcePath != path {
		t.Errorf("expected source path %q, got %q", path, transcript.SourcePath)
	}
}

func TestTranscribeExecuteOverrides(t *testing.T) {
	client := &fakeTranscriptionClient{result: &openai.TranscriptionResult{Text: "ok"}}
	uc := newTranscribe(client)
	path := writeAudioFile(t, "meeting.wav")

	_, err := uc.Execute(context.Background(), path, TranscribeOptions{
		Model:    "whisper-1",
		Language: "en",
		Format:   "verbose_json",
		Prompt:   "nomes próprios: ClareIA",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	req := client.lastReq
	if req.Model != "whisper-1" || req.Language != "en" || req.ResponseFormat != "verbose_json" {
		t.Errorf("overrides not applied: %+v", req)
	}
	if req.Prompt != "nomes próprios: ClareIA" {
		t.Errorf("prompt not forwarded: %q", req.Prompt)
	}
}

func TestTranscribeExecuteMissingFile(t *testing.T) {
	client := &fakeTranscriptionClient{}
	uc := newTranscribe(client)

	_, err := uc.Execute(context.Background(), filepath.Join(t.TempDir(), "nope.mp3"), TranscribeOptions{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if client.calls != 0 {
		t.Errorf("expected 0 calls, got %d", client.calls)
	}
}

func TestTranscribeExecuteUnsupportedExtension(t *testing.T) {
	client := &fakeTranscriptionClient{}
	uc := newTranscribe(client)
	path := filepath.Join(t.TempDir(), "meeting.ogg")
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := uc.Execute(context.Background(), path, TranscribeOptions{})
	if err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Fatalf("expected unsupported-type error, got %v", err)
	}
	if client.calls != 0 {
		t.Errorf("expected 0 calls, got %d", client.calls)
	}
}

func TestTranscribeExecuteDirectory(t *testing.T) {
	client := &fakeTranscriptionClient{}
	uc := newTranscribe(client)

	_, err := uc.Execute(context.Background(), t.TempDir(), TranscribeOptions{})
	if err == nil {
		t.Fatal("expected error for directory input")
	}
	if client.calls != 0 {
		t.Errorf("expected 0 calls, got %d", client.calls)
	}
}

func TestTranscribeExecuteInvalidFormatPair(t *testing.T) {
	client := &fakeTranscriptionClient{}
	uc := newTranscribe(client)
	path := writeAudioFile(t, "meeting.mp3")

	_, err := uc.Execute(context.Background(), path, TranscribeOptions{Format: "srt"})
	if err == nil {
		t.Fatal("expected validation error for gpt-4o-transcribe + srt")
	}
	if client.calls != 0 {
		t.Errorf("validation must happen before any call, got %d calls", client.calls)
	}
}

func TestTranscribeExecutePropagatesClientError(t *testing.T) {
	wantErr := errors.New("network down")
	client := &fakeTranscriptionClient{err: wantErr}
	uc := newTranscribe(client)
	path := writeAudioFile(t, "meeting.mp3")

	_, err := uc.Execute(context.Background(), path, TranscribeOptions{})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected client error to surface, got %v", err)
	}
}

func TestSaveTranscript(t *testing.T) {
	transcript := &meeting.Transcript{
		Text:     "Olá.",
		Language: "pt",
		Segments: []meeting.Segment{{Start: 0, End: 1.5, Text: "Olá."}},
	}
	dir := t.TempDir()

	t.Run("json by extension", func(t *testing.T) {
		path := filepath.Join(dir, "out.json")
		if err := SaveTranscript(transcript, path, false); err != nil {
			t.Fatalf("SaveTranscript: %v", err)
		}
		loaded, err := meeting.LoadTranscript(path, "")
		if err != nil {
			t.Fatalf("LoadTranscript: %v", err)
		}
		if loaded.Text != "Olá." || len(loaded.Segments) != 1 {
			t.Errorf("round trip mismatch: %+v", loaded)
		}
	})

	t.Run("forced json with txt extension", func(t *testing.T) {
		path := filepath.Join(dir, "out.txt")
		if err := SaveTranscript(transcript, path, true); err != nil {
			t.Fatalf("SaveTranscript: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !strings.Contains(string(data), `"segments"`) {
			t.Errorf("expected JSON content, got %s", data)
		}
	})

	t.Run("srt from segments", func(t *testing.T) {
		path := filepath.Join(dir, "out.srt")
		if err := SaveTranscript(transcript, path, false); err != nil {
			t.Fatalf("SaveTranscript: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !strings.Contains(string(data), "00:00:00,000 --> 00:00:01,500") {
			t.Errorf("expected SRT cue, got %s", data)
		}
	})

	t.Run("srt without segments falls back to text", func(t *testing.T) {
		plain := &meeting.Transcript{Text: "raw srt payload"}
		path := filepath.Join(dir, "plain.srt")
		if err := SaveTranscript(plain, path, false); err != nil {
			t.Fatalf("SaveTranscript: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "raw srt payload" {
			t.Errorf("expected raw text write-through, got %s", data)
		}
	})

	t.Run("plain text", func(t *testing.T) {
		path := filepath.Join(dir, "out2.txt")
		if err := SaveTranscript(transcript, path, false); err != nil {
			t.Fatalf("SaveTranscript: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "Olá." {
			t.Errorf("expected plain text, got %s", data)
		}
	})
}
