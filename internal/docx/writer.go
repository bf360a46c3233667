// Package docx renders meeting minutes as a Word document.
package docx

import (
	"github.com/gomutex/godocx"
	godocxdoc "github.com/gomutex/godocx/docx"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting"
)

const (
	fontName    = "Calibri"
	bodySize    = 12
	headingSize = 14
	titleSize   = 16
)

// WriteMinutes builds a styled .docx with the minutes sections and saves it
// to outputPath.
func WriteMinutes(s *meeting.MeetingSummary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	title := s.Title
	if title == "" {
		title = "Ata da Reunião"
	}
	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Resumo", true, headingSize)
	addStyledRun(doc.AddParagraph(""), s.Summary, false, bodySize)

	addSection(doc, "Pontos Principais", s.KeyPoints)
	addSection(doc, "Decisões", s.Decisions)

	if len(s.ActionItems) > 0 {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), "Itens de Ação", true, headingSize)
		for _, item := range s.ActionItems {
			addStyledRun(doc.AddParagraph(""), "• "+item.Label(), false, bodySize)
		}
	}

	addSection(doc, "Insights", s.Insights)

	return doc.SaveTo(outputPath)
}

func addSection(doc *godocxdoc.RootDoc, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), heading, true, headingSize)
	for _, item := range items {
		addStyledRun(doc.AddParagraph(""), "• "+item, false, bodySize)
	}
}

func addStyledRun(p *godocxdoc.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
