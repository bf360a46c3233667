package usecases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting"
)

func sampleMinutes() *meeting.MeetingSummary {
	return &meeting.MeetingSummary{
		Title:     "Planejamento Q3",
		Summary:   "Metas do trimestre alinhadas.",
		Decisions: []string{"Contratar dois engenheiros"},
		ActionItems: []meeting.ActionItem{
			{Description: "Abrir vagas", Owner: "Carlos", DueDate: "2026-09-15"},
		},
	}
}

const validEmailJSON = `{
	"subject": "Follow-up: Planejamento Q3",
	"greeting": "Olá time,",
	"summary": "Alinhamos as metas do trimestre.",
	"key_decisions": ["Contratar dois engenheiros"],
	"action_items": ["Abrir vagas (Carlos) - até 2026-09-15"],
	"next_steps": "Acompanhar o processo seletivo.",
	"closing": "Abraços,\nAna"
}`

func TestFollowUpExecute(t *testing.T) {
	provider := &fakeProvider{content: validEmailJSON}
	uc := &FollowUp{Provider: provider}

	email, err := uc.Execute(context.Background(), sampleMinutes(), FollowUpOptions{
		MeetingDate: "2026-08-20",
		SenderName:  "Ana",
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("expected exactly 1 provider call, got %d", provider.calls)
	}
	if email.Subject != "Follow-up: Planejamento Q3" {
		t.Errorf("unexpected subject %q", email.Subject)
	}
	if email.MeetingDate != "2026-08-20" {
		t.Errorf("meeting date should come from options, got %q", email.MeetingDate)
	}

	req := provider.lastReq
	if req.Temperature != followUpTemperature {
		t.Errorf("expected fixed temperature %v, got %v", followUpTemperature, req.Temperature)
	}
	for _, want := range []string{
		"TÍTULO: Planejamento Q3",
		"Contratar dois engenheiros",
		"Abrir vagas (Carlos) - até 2026-09-15",
		"Data da reunião: 2026-08-20",
		"Remetente: Ana",
		"Empresa: Acme",
	} {
		if !strings.Contains(req.User, want) {
			t.Errorf("prompt missing %q:\n%s", want, req.User)
		}
	}
}

func TestFollowUpExecuteMalformedResponseFallsBack(t *testing.T) {
	provider := &fakeProvider{content: "desculpe, não consegui"}
	uc := &FollowUp{Provider: provider}

	email, err := uc.Execute(context.Background(), sampleMinutes(), FollowUpOptions{SenderName: "Ana"})
	if err != nil {
		t.Fatalf("Execute should fall back, not fail: %v", err)
	}

	if email.Subject != "Follow-up: Planejamento Q3" {
		t.Errorf("expected fallback subject, got %q", email.Subject)
	}
	if len(email.ActionItems) != 1 || email.ActionItems[0] != "Abrir vagas (Carlos) - até 2026-09-15" {
		t.Errorf("expected fallback action items, got %+v", email.ActionItems)
	}
	if !strings.Contains(email.Closing, "Ana") {
		t.Errorf("fallback closing should carry sender, got %q", email.Closing)
	}
}

func TestFollowUpExecuteProviderErrorSurfaces(t *testing.T) {
	wantErr := errors.New("rate limited")
	uc := &FollowUp{Provider: &fakeProvider{err: wantErr}}

	_, err := uc.Execute(context.Background(), sampleMinutes(), FollowUpOptions{})
	if !errors.Is(err, wantErr) {
		t.Errorf("provider error must surface, got %v", err)
	}
}

func TestFollowUpExecuteFillsGaps(t *testing.T) {
	// Model returned valid JSON but left several fields empty.
	provider := &fakeProvider{content: `{"summary": "Resumo do modelo.", "closing": ""}`}
	uc := &FollowUp{Provider: provider}

	email, err := uc.Execute(context.Background(), sampleMinutes(), FollowUpOptions{SenderName: "Ana"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if email.Summary != "Resumo do modelo." {
		t.Errorf("model-provided field must win, got %q", email.Summary)
	}
	if email.Subject != "Follow-up: Planejamento Q3" {
		t.Errorf("empty subject should be filled from minutes, got %q", email.Subject)
	}
	if len(email.KeyDecisions) != 1 {
		t.Errorf("empty decisions should be filled from minutes, got %+v", email.KeyDecisions)
	}
	if !strings.Contains(email.Closing, "Ana") {
		t.Errorf("empty closing should be filled, got %q", email.Closing)
	}
}

func TestSaveEmail(t *testing.T) {
	email := &meeting.EmailFollowUp{
		Subject:   "Follow-up: Planejamento Q3",
		Greeting:  "Olá,",
		Summary:   "Resumo.",
		NextSteps: "Acompanhar.",
		Closing:   "Abs",
	}
	dir := t.TempDir()

	t.Run("html", func(t *testing.T) {
		path := filepath.Join(dir, "email.html")
		if err := SaveEmail(email, path); err != nil {
			t.Fatalf("SaveEmail: %v", err)
		}
		data, _ := os.ReadFile(path)
		if !strings.Contains(string(data), "<!DOCTYPE html>") {
			t.Errorf("expected HTML document, got %s", data)
		}
	})

	t.Run("plain text", func(t *testing.T) {
		path := filepath.Join(dir, "email.txt")
		if err := SaveEmail(email, path); err != nil {
			t.Fatalf("SaveEmail: %v", err)
		}
		data, _ := os.ReadFile(path)
		if !strings.Contains(string(data), "FOLLOW-UP DA REUNIÃO") {
			t.Errorf("expected plain text email, got %s", data)
		}
	})
}
