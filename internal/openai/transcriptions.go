package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// TranscriptionRequest describes one call to the transcription endpoint.
type TranscriptionRequest struct {
	FilePath       string
	Model          string
	Language       string
	Prompt         string // optional contextual hint (names, jargon)
	ResponseFormat string
}

// TranscriptionSegment is one timestamped span from a verbose_json response.
type TranscriptionSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResult is the parsed transcription response. For the text,
// srt and vtt formats only Text is populated, holding the raw response body.
type TranscriptionResult struct {
	Text     string
	Language string
	Duration float64
	Segments []TranscriptionSegment
}

// verboseResponse matches the verbose_json response shape.
type verboseResponse struct {
	Text     string                 `json:"text"`
	Language string                 `json:"language"`
	Duration float64                `json:"duration"`
	Segments []TranscriptionSegment `json:"segments"`
}

// CreateTranscription uploads the audio file and returns the parsed result.
// The model/format combination is validated locally first; an invalid pair
// never reaches the network.
func (c *Client) CreateTranscription(ctx context.Context, req TranscriptionRequest) (*TranscriptionResult, error) {
	if err := ValidateModelFormat(req.Model, req.ResponseFormat); err != nil {
		return nil, err
	}

	var result *TranscriptionResult
	err := c.withRetry(ctx, "transcription", func() error {
		r, err := c.doTranscription(ctx, req)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// doTranscription performs a single multipart POST to /audio/transcriptions.
func (c *Client) doTranscription(ctx context.Context, req TranscriptionRequest) (*TranscriptionResult, error) {
	file, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("model", req.Model); err != nil {
		return nil, err
	}
	if req.Language != "" {
		if err := writer.WriteField("language", req.Language); err != nil {
			return nil, err
		}
	}
	if prompt := strings.TrimSpace(req.Prompt); prompt != "" {
		if err := writer.WriteField("prompt", prompt); err != nil {
			return nil, err
		}
	}
	if err := writer.WriteField("response_format", req.ResponseFormat); err != nil {
		return nil, err
	}

	part, err := writer.CreateFormFile("file", filepath.Base(req.FilePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/audio/transcriptions", body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &retryableError{err: fmt.Errorf("calling transcription API: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &retryableError{err: fmt.Errorf("reading response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp.StatusCode, respBody)
	}

	return parseTranscription(respBody, req.ResponseFormat)
}

// parseTranscription decodes the response body according to the requested
// format. Subtitle and plain-text formats come back as raw text.
func parseTranscription(body []byte, responseFormat string) (*TranscriptionResult, error) {
	switch responseFormat {
	case FormatVerboseJSON:
		var parsed verboseResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("parsing verbose_json response: %w", err)
		}
		return &TranscriptionResult{
			Text:     parsed.Text,
			Language: parsed.Language,
			Duration: parsed.Duration,
			Segments: parsed.Segments,
		}, nil

	case FormatJSON:
		var parsed struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("parsing json response: %w", err)
		}
		return &TranscriptionResult{Text: parsed.Text}, nil

	default: // text, srt, vtt
		return &TranscriptionResult{Text: string(body)}, nil
	}
}
