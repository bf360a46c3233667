package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting/usecases"
	"github.com/adelsonfagundes/ClareIA/internal/output"
)

func NewSummarizeCmd(deps *Dependencies) *cobra.Command {
	var (
		model        string
		temperature  float64
		extraContext string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "summarize <transcript-or-audio>",
		Short: "Generate structured minutes from a transcript or audio file",
		Long: `Generate meeting minutes (summary, key points, decisions, action items,
insights) from an existing transcript (.json/.txt) or directly from an audio
file (.mp3/.wav/.m4a), which is transcribed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if usecases.IsAudioFile(args[0]) {
				if err := deps.Config.RequireOpenAI(); err != nil {
					return err
				}
			}
			if err := deps.Config.RequireSummaryCredential(); err != nil {
				return err
			}

			formatter := output.NewFormatter(os.Stdout)

			if usecases.IsAudioFile(args[0]) {
				formatter.Transcribing(args[0])
			}
			transcript, err := deps.App.Summarize.ResolveTranscript(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			opts := usecases.SummarizeOptions{
				Model:        model,
				ExtraContext: extraContext,
			}
			if cmd.Flags().Changed("temperature") {
				opts.Temperature = &temperature
			}

			formatter.Summarizing()
			summary, err := deps.App.Summarize.Execute(cmd.Context(), transcript, opts)
			if err != nil {
				return err
			}

			if outPath == "" {
				data, err := summary.JSON()
				if err != nil {
					return err
				}
				formatter.Raw(string(data))
				return nil
			}

			if err := usecases.SaveSummary(summary, outPath); err != nil {
				return err
			}
			formatter.SummarySaved(outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "summary model (e.g. gpt-4o-mini)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "model temperature (0.0 to 1.0)")
	cmd.Flags().StringVarP(&extraContext, "context", "c", "", "extra context (participants, meeting goal)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (.json, .md or .docx)")

	return cmd
}
