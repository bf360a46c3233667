package meeting

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Segment is a time-bounded span of recognized text within a transcript.
// Start and End are offsets in seconds from the beginning of the audio.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// Transcript is the structured result of one transcription run. It is
// created once per input file and never mutated afterwards.
type Transcript struct {
	Text       string    `json:"text"`
	Language   string    `json:"language"`
	Duration   float64   `json:"duration,omitempty"`
	Segments   []Segment `json:"segments,omitempty"`
	SourcePath string    `json:"source_path,omitempty"`
}

// JSON serializes the transcript with two-space indentation.
func (t *Transcript) JSON() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// HasSegments reports whether timestamped segments are available.
func (t *Transcript) HasSegments() bool {
	return len(t.Segments) > 0
}

// SRT renders the segments as an SRT subtitle document. The caller must
// check HasSegments first; without segments there is nothing to time-stamp.
func (t *Transcript) SRT() string {
	var sb strings.Builder
	for i, seg := range t.Segments {
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n", formatSRTTime(seg.Start), formatSRTTime(seg.End))
		sb.WriteString(strings.TrimSpace(seg.Text))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// VTT renders the segments as a WebVTT subtitle document.
func (t *Transcript) VTT() string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for _, seg := range t.Segments {
		fmt.Fprintf(&sb, "%s --> %s\n", formatVTTTime(seg.Start), formatVTTTime(seg.End))
		sb.WriteString(strings.TrimSpace(seg.Text))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// formatSRTTime converts seconds to SRT time format HH:MM:SS,mmm.
func formatSRTTime(seconds float64) string {
	h, m, s, ms := splitClock(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// formatVTTTime converts seconds to WebVTT time format HH:MM:SS.mmm.
func formatVTTTime(seconds float64) string {
	h, m, s, ms := splitClock(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func splitClock(seconds float64) (h, m, s, ms int) {
	// Round to whole milliseconds first so carries propagate through
	// seconds and minutes instead of producing "00:00:60".
	totalMS := int(math.Round(math.Abs(seconds) * 1000))
	ms = totalMS % 1000
	totalSec := totalMS / 1000
	s = totalSec % 60
	m = (totalSec / 60) % 60
	h = totalSec / 3600
	return h, m, s, ms
}

// LoadTranscript reads a previously saved transcript. JSON files restore the
// full structure; plain text files become a transcript with text only.
func LoadTranscript(path, fallbackLanguage string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var t Transcript
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parsing transcript JSON: %w", err)
		}
		return &t, nil
	}

	return &Transcript{
		Text:       string(data),
		Language:   fallbackLanguage,
		SourcePath: path,
	}, nil
}
