package meeting

import (
	"strings"
	"testing"
)

func TestActionItemLabel(t *testing.T) {
	tests := []struct {
		name string
		item ActionItem
		want string
	}{
		{"description only", ActionItem{Description: "Revisar proposta"}, "Revisar proposta"},
		{"with owner", ActionItem{Description: "Revisar proposta", Owner: "Ana"}, "Revisar proposta (Ana)"},
		{"with due date", ActionItem{Description: "Revisar proposta", DueDate: "2026-09-01"}, "Revisar proposta - até 2026-09-01"},
		{
			"full",
			ActionItem{Description: "Revisar proposta", Owner: "Ana", DueDate: "2026-09-01"},
			"Revisar proposta (Ana) - até 2026-09-01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarkdownFullSummary(t *testing.T) {
	s := &MeetingSummary{
		Title:     "Planejamento Q3",
		Summary:   "Discussão sobre metas do trimestre.",
		KeyPoints: []string{"Meta de receita definida", "Novo produto em julho"},
		Decisions: []string{"Contratar dois engenheiros"},
		ActionItems: []ActionItem{
			{Description: "Abrir vagas", Owner: "Carlos", DueDate: "2026-09-15"},
		},
		Insights: []string{"Time motivado com a nova direção"},
	}

	md := s.Markdown()

	for _, want := range []string{
		"# Planejamento Q3",
		"## Resumo\n\nDiscussão sobre metas do trimestre.",
		"## Pontos Principais",
		"- Meta de receita definida",
		"## Decisões",
		"- Contratar dois engenheiros",
		"## Itens de Ação",
		"- Abrir vagas (Carlos) - até 2026-09-15",
		"## Insights",
		"- Time motivado com a nova direção",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	s := &MeetingSummary{Summary: "Reunião curta, sem decisões."}
	md := s.Markdown()

	if !strings.Contains(md, "# Ata da Reunião") {
		t.Errorf("expected default title, got:\n%s", md)
	}
	for _, heading := range []string{"## Pontos Principais", "## Decisões", "## Itens de Ação", "## Insights"} {
		if strings.Contains(md, heading) {
			t.Errorf("empty section %q should be omitted:\n%s", heading, md)
		}
	}
}

func TestParseSummaryJSONDirect(t *testing.T) {
	content := `{
		"title": "Reunião de Vendas",
		"summary": "Revisão do pipeline.",
		"key_points": ["Pipeline saudável"],
		"decisions": ["Focar em enterprise"],
		"action_items": [{"description": "Atualizar CRM", "owner": "Bia"}],
		"insights": ["Ciclo de venda caiu"]
	}`

	s, err := ParseSummaryJSON(content)
	if err != nil {
		t.Fatalf("ParseSummaryJSON: %v", err)
	}
	if s.Title != "Reunião de Vendas" {
		t.Errorf("unexpected title %q", s.Title)
	}
	if len(s.ActionItems) != 1 || s.ActionItems[0].Owner != "Bia" {
		t.Errorf("unexpected action items %+v", s.ActionItems)
	}
}

func TestParseSummaryJSONWrappedInProse(t *testing.T) {
	content := "Aqui está a ata solicitada:\n\n" +
		`{"summary": "Reunião de alinhamento.", "key_points": [], "decisions": [], "action_items": [], "insights": []}` +
		"\n\nEspero que ajude!"

	s, err := ParseSummaryJSON(content)
	if err != nil {
		t.Fatalf("ParseSummaryJSON: %v", err)
	}
	if s.Summary != "Reunião de alinhamento." {
		t.Errorf("unexpected summary %q", s.Summary)
	}
}

func TestParseSummaryJSONInvalid(t *testing.T) {
	for _, content := range []string{"", "nenhum json aqui", "{broken", "sem chaves }"} {
		if _, err := ParseSummaryJSON(content); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}
