// Package web serves the upload form UI. Processing is synchronous and
// mirrors the CLI call sequence: one transcription call, then optionally one
// summarization call.
package web

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/adelsonfagundes/ClareIA/internal/app"
	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting/usecases"
)

const maxUploadBytes = 200 << 20 // 200 MB

type Server struct {
	app *app.App
}

func NewServer(a *app.App) *Server {
	return &Server{app: a}
}

// Handler returns the HTTP routes of the web UI.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /transcribe", s.handleTranscribe)
	return mux
}

// ListenAndServe blocks serving the UI on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, indexTemplate, nil)
}

type resultView struct {
	FileName   string
	Transcript string
	Minutes    template.HTML
	HasMinutes bool
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.renderError(w, http.StatusBadRequest, fmt.Errorf("parsing upload: %w", err))
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		s.renderError(w, http.StatusBadRequest, fmt.Errorf("missing audio file: %w", err))
		return
	}
	defer file.Close()

	if !usecases.IsAudioFile(header.Filename) {
		s.renderError(w, http.StatusBadRequest, fmt.Errorf("unsupported file type %q: use .mp3, .wav or .m4a", filepath.Ext(header.Filename)))
		return
	}

	tempPath, err := saveUpload(file, header.Filename)
	if err != nil {
		s.renderError(w, http.StatusInternalServerError, err)
		return
	}
	defer os.Remove(tempPath)

	transcript, err := s.app.Transcribe.Execute(r.Context(), tempPath, usecases.TranscribeOptions{})
	if err != nil {
		s.renderError(w, http.StatusBadGateway, err)
		return
	}

	view := resultView{
		FileName:   header.Filename,
		Transcript: transcript.Text,
	}

	if r.FormValue("summarize") == "on" {
		summary, err := s.app.Summarize.Execute(r.Context(), transcript, usecases.SummarizeOptions{})
		if err != nil {
			s.renderError(w, http.StatusBadGateway, err)
			return
		}
		view.HasMinutes = true
		view.Minutes = markdownToHTML(summary.Markdown())
	}

	s.render(w, resultTemplate, view)
}

// saveUpload stores the uploaded audio under a uuid-named temp file, keeping
// the original extension for type detection.
func saveUpload(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(os.TempDir(), name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("saving upload: %w", err)
	}
	return path, nil
}

func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("rendering page", "error", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, status int, err error) {
	slog.Error("request failed", "status", status, "error", err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = errorTemplate.Execute(w, err.Error())
}

// markdownToHTML converts the limited markdown the minutes use (headings and
// bullets) to HTML for inline display.
func markdownToHTML(md string) template.HTML {
	var sb strings.Builder
	inList := false
	closeList := func() {
		if inList {
			sb.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "## "):
			closeList()
			fmt.Fprintf(&sb, "<h3>%s</h3>\n", template.HTMLEscapeString(trimmed[3:]))
		case strings.HasPrefix(trimmed, "# "):
			closeList()
			fmt.Fprintf(&sb, "<h2>%s</h2>\n", template.HTMLEscapeString(trimmed[2:]))
		case strings.HasPrefix(trimmed, "- "):
			if !inList {
				sb.WriteString("<ul>\n")
				inList = true
			}
			fmt.Fprintf(&sb, "<li>%s</li>\n", template.HTMLEscapeString(trimmed[2:]))
		case trimmed == "":
			closeList()
		default:
			closeList()
			fmt.Fprintf(&sb, "<p>%s</p>\n", template.HTMLEscapeString(trimmed))
		}
	}
	closeList()
	return template.HTML(sb.String())
}
