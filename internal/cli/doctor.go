package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adelsonfagundes/ClareIA/config"
	"github.com/adelsonfagundes/ClareIA/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if deps.Config.OpenAIAPIKey != "" {
				f.SetupCheck("OpenAI API key", true, "configured")
			} else {
				f.SetupCheck("OpenAI API key", false, "not set. Export OPENAI_API_KEY or add to config")
				ok = false
			}

			if deps.Config.SummaryProvider == config.ProviderGemini {
				if deps.Config.GeminiAPIKey != "" {
					f.SetupCheck("Gemini API key", true, "configured")
				} else {
					f.SetupCheck("Gemini API key", false, "not set. Export GEMINI_API_KEY or add to config")
					ok = false
				}
			}

			f.SetupCheck("Transcription model", true, deps.Config.TranscribeModel)
			f.SetupCheck("Response format", true, deps.Config.ResponseFormat)
			f.SetupCheck("Summary provider", true,
				fmt.Sprintf("%s (%s)", deps.Config.SummaryProvider, summaryModel(deps.Config)))
			f.SetupCheck("Timeout / retries", true,
				fmt.Sprintf("%s / %d", deps.Config.Timeout, deps.Config.MaxRetries))

			if ok {
				f.Success("\nAll prerequisites met.")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

func summaryModel(cfg *config.Config) string {
	if cfg.SummaryProvider == config.ProviderGemini {
		return cfg.GeminiModel
	}
	return cfg.SummaryModel
}
