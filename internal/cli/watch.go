package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting/usecases"
	"github.com/adelsonfagundes/ClareIA/internal/output"
	"github.com/adelsonfagundes/ClareIA/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a directory and process new audio files",
		Long: `Watch a directory for new audio files. Each file is transcribed and
summarized sequentially; the transcript (.json) and minutes (.md) are written
next to the audio file, or into --output-dir when set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Config.RequireOpenAI(); err != nil {
				return err
			}
			if err := deps.Config.RequireSummaryCredential(); err != nil {
				return err
			}

			dir := args[0]
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return errors.New("watch target must be an existing directory: " + dir)
			}

			formatter := output.NewFormatter(os.Stdout)

			handler := func(ctx context.Context, path string) error {
				return processAudioFile(ctx, deps, formatter, path, outDir)
			}

			w, err := watcher.New(dir, usecases.IsAudioFile, handler)
			if err != nil {
				return err
			}
			defer w.Stop()

			formatter.Watching(dir)
			if err := w.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "", "directory for transcripts and minutes (default: alongside the audio)")

	return cmd
}

// processAudioFile runs the transcribe-then-summarize sequence for one file.
func processAudioFile(ctx context.Context, deps *Dependencies, formatter *output.Formatter, audioPath, outDir string) error {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(audioPath)
	}

	formatter.Transcribing(audioPath)
	transcript, err := deps.App.Transcribe.Execute(ctx, audioPath, usecases.TranscribeOptions{})
	if err != nil {
		return err
	}

	transcriptPath := filepath.Join(dir, base+".json")
	if err := usecases.SaveTranscript(transcript, transcriptPath, true); err != nil {
		return err
	}
	formatter.TranscriptSaved(transcriptPath)

	formatter.Summarizing()
	summary, err := deps.App.Summarize.Execute(ctx, transcript, usecases.SummarizeOptions{})
	if err != nil {
		return err
	}

	minutesPath := filepath.Join(dir, base+".md")
	if err := usecases.SaveSummary(summary, minutesPath); err != nil {
		return err
	}
	formatter.SummarySaved(minutesPath)

	return nil
}
