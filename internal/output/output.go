package output

import (
	"fmt"
	"io"
	"strings"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Transcribing(path string) {
	fmt.Fprintf(f.w, "📝 Transcribing %s...\n", path)
}

func (f *Formatter) TranscriptSaved(path string) {
	fmt.Fprintf(f.w, "✅ Transcript saved: %s\n", path)
}

// TranscriptPreview prints up to limit characters of the transcript text.
func (f *Formatter) TranscriptPreview(text string, limit int) {
	fmt.Fprintf(f.w, "📝 Transcript:\n\n")
	if len(text) > limit {
		fmt.Fprintf(f.w, "%s...\n", text[:limit])
		return
	}
	fmt.Fprintln(f.w, text)
}

func (f *Formatter) Summarizing() {
	fmt.Fprintf(f.w, "🤖 Generating minutes...\n")
}

func (f *Formatter) SummarySaved(path string) {
	fmt.Fprintf(f.w, "✅ Minutes saved: %s\n", path)
}

func (f *Formatter) GeneratingEmail() {
	fmt.Fprintf(f.w, "📧 Generating follow-up email...\n")
}

func (f *Formatter) EmailSaved(path string) {
	fmt.Fprintf(f.w, "✅ Follow-up email saved: %s\n", path)
}

func (f *Formatter) Watching(dir string) {
	fmt.Fprintf(f.w, "👀 Watching %s for new audio files (Ctrl+C to stop)\n", dir)
}

func (f *Formatter) Serving(addr string) {
	fmt.Fprintf(f.w, "🌐 Web UI listening on http://%s\n", addr)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

// Raw prints pre-formatted content (e.g. JSON) followed by a newline when
// one is missing.
func (f *Formatter) Raw(content string) {
	fmt.Fprint(f.w, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(f.w)
	}
}
