package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting"
)

// FollowUp generates a follow-up email from meeting minutes.
type FollowUp struct {
	Provider SummaryProvider
}

// FollowUpOptions carry the optional context for the email prompt.
type FollowUpOptions struct {
	MeetingDate  string
	SenderName   string
	CompanyName  string
	ExtraContext string
}

// Emails aim for a consistent professional tone, so the temperature is
// fixed rather than configurable.
const followUpTemperature = 0.3

const followUpSystemPrompt = `Você é um assistente especializado em comunicação corporativa.
Sua tarefa é gerar um email de follow-up profissional e bem estruturado baseado na ata de uma reunião.

Retorne um JSON válido com a seguinte estrutura:
{
    "subject": "Assunto do email (máx 60 caracteres)",
    "greeting": "Saudação personalizada e calorosa",
    "summary": "Resumo executivo conciso (2-3 frases)",
    "key_decisions": ["Lista das principais decisões tomadas"],
    "action_items": ["Lista dos itens de ação formatados com responsável e prazo quando disponível"],
    "next_steps": "Próximos passos sugeridos (1-2 frases)",
    "closing": "Fechamento profissional e cordial"
}

DIRETRIZES:
- Tom profissional mas acessível
- Seja conciso e objetivo
- Use linguagem clara e direta
- Use português brasileiro`

// Execute asks the provider for a structured email. A malformed model
// response falls back to a deterministic email assembled from the minutes;
// provider errors surface to the caller.
func (f *FollowUp) Execute(ctx context.Context, summary *meeting.MeetingSummary, opts FollowUpOptions) (*meeting.EmailFollowUp, error) {
	slog.Info("generating follow-up email")

	content, err := f.Provider.GenerateStructured(ctx, SummaryRequest{
		System:      followUpSystemPrompt,
		User:        buildFollowUpPrompt(summary, opts),
		Temperature: followUpTemperature,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, err
	}

	var email meeting.EmailFollowUp
	if err := json.Unmarshal([]byte(content), &email); err != nil {
		slog.Warn("follow-up response was not valid JSON, using fallback email", "error", err)
		return meeting.FallbackEmail(summary, opts.MeetingDate, opts.SenderName), nil
	}

	// Fill gaps the model left with data from the minutes.
	fallback := meeting.FallbackEmail(summary, opts.MeetingDate, opts.SenderName)
	if email.Subject == "" {
		email.Subject = fallback.Subject
	}
	if email.Greeting == "" {
		email.Greeting = fallback.Greeting
	}
	if email.Summary == "" {
		email.Summary = fallback.Summary
	}
	if len(email.KeyDecisions) == 0 {
		email.KeyDecisions = fallback.KeyDecisions
	}
	if len(email.ActionItems) == 0 {
		email.ActionItems = fallback.ActionItems
	}
	if email.NextSteps == "" {
		email.NextSteps = fallback.NextSteps
	}
	if email.Closing == "" {
		email.Closing = fallback.Closing
	}
	email.MeetingDate = opts.MeetingDate

	slog.Info("follow-up email generated", "subject", email.Subject)
	return &email, nil
}

func buildFollowUpPrompt(summary *meeting.MeetingSummary, opts FollowUpOptions) string {
	var sb strings.Builder

	title := summary.Title
	if title == "" {
		title = "Reunião"
	}
	fmt.Fprintf(&sb, "Ata da reunião para gerar follow-up:\n\nTÍTULO: %s\n\nRESUMO: %s\n", title, summary.Summary)

	writeList := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&sb, "\n%s:\n", heading)
		for _, item := range items {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
	}

	writeList("PONTOS PRINCIPAIS", summary.KeyPoints)
	writeList("DECISÕES TOMADAS", summary.Decisions)

	if len(summary.ActionItems) > 0 {
		sb.WriteString("\nITENS DE AÇÃO:\n")
		for _, item := range summary.ActionItems {
			fmt.Fprintf(&sb, "- %s\n", item.Label())
		}
	}

	writeList("INSIGHTS", summary.Insights)

	var context []string
	if opts.MeetingDate != "" {
		context = append(context, "Data da reunião: "+opts.MeetingDate)
	}
	if opts.SenderName != "" {
		context = append(context, "Remetente: "+opts.SenderName)
	}
	if opts.CompanyName != "" {
		context = append(context, "Empresa: "+opts.CompanyName)
	}
	if opts.ExtraContext != "" {
		context = append(context, "Contexto adicional: "+opts.ExtraContext)
	}
	if len(context) > 0 {
		fmt.Fprintf(&sb, "\nCONTEXTO ADICIONAL:\n%s\n", strings.Join(context, "\n"))
	}

	sb.WriteString("\nGere um email de follow-up profissional e estruturado.")
	return sb.String()
}

// SaveEmail writes the email to outputPath: .html renders the HTML document,
// anything else the plain-text version.
func SaveEmail(e *meeting.EmailFollowUp, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var content string
	if strings.ToLower(filepath.Ext(outputPath)) == ".html" {
		html, err := e.HTML()
		if err != nil {
			return err
		}
		content = html
	} else {
		content = e.PlainText()
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing email: %w", err)
	}
	return nil
}
