package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting/usecases"
	"github.com/adelsonfagundes/ClareIA/internal/output"
)

const previewLimit = 4000

func NewTranscribeCmd(deps *Dependencies) *cobra.Command {
	var (
		model    string
		language string
		format   string
		prompt   string
		outPath  string
		saveJSON bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio file (mp3/wav/m4a)",
		Long: `Transcribe an audio file using the OpenAI speech-to-text API.

Output format depends on the model:
- gpt-4o-transcribe models: use --format json or text
- whisper-1: also allows verbose_json (timestamped segments), srt and vtt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Config.RequireOpenAI(); err != nil {
				return err
			}

			formatter := output.NewFormatter(os.Stdout)
			formatter.Transcribing(args[0])

			transcript, err := deps.App.Transcribe.Execute(cmd.Context(), args[0], usecases.TranscribeOptions{
				Model:    model,
				Language: language,
				Format:   format,
				Prompt:   prompt,
			})
			if err != nil {
				return err
			}

			if outPath == "" {
				formatter.TranscriptPreview(transcript.Text, previewLimit)
				return nil
			}

			if err := usecases.SaveTranscript(transcript, outPath, saveJSON); err != nil {
				return err
			}
			formatter.TranscriptSaved(outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "transcription model (e.g. gpt-4o-transcribe, whisper-1)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "language code (e.g. pt)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "API response format: text, json, verbose_json, srt, vtt")
	cmd.Flags().StringVar(&prompt, "prompt", "", "contextual hint (proper names, technical terms)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (.txt, .json, .srt or .vtt)")
	cmd.Flags().BoolVar(&saveJSON, "save-json", false, "force saving the transcript as JSON")

	return cmd
}
