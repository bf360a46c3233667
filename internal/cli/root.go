package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/adelsonfagundes/ClareIA/config"
	"github.com/adelsonfagundes/ClareIA/internal/app"
	"github.com/adelsonfagundes/ClareIA/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

var (
	verbose bool
	quiet   bool
)

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clareia",
		Short: "Transcribe meeting audio and generate minutes with AI",
		Long: `ClareIA transcribes audio files through the OpenAI speech-to-text API and
turns transcripts into structured meeting minutes, action items and
follow-up emails.

Format compatibility:
- gpt-4o-transcribe models: response format 'json' or 'text' only
- whisper-1: also supports 'verbose_json', 'srt' and 'vtt'`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddCommand(NewTranscribeCmd(deps))
	rootCmd.AddCommand(NewSummarizeCmd(deps))
	rootCmd.AddCommand(NewFollowUpCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewServeCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
