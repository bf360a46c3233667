package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting"
	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting/usecases"
	"github.com/adelsonfagundes/ClareIA/internal/output"
)

func NewFollowUpCmd(deps *Dependencies) *cobra.Command {
	var (
		meetingDate  string
		senderName   string
		companyName  string
		extraContext string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "followup <minutes.json|transcript|audio>",
		Short: "Generate a follow-up email from meeting minutes",
		Long: `Generate a structured follow-up email. The input can be previously saved
minutes (.json), a transcript (.json/.txt) or an audio file; transcripts and
audio are summarized first.`,
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

			summary, err := resolveSummary(deps, cmd, formatter, args[0])
			if err != nil {
				return err
			}

			formatter.GeneratingEmail()
			email, err := deps.App.FollowUp.Execute(cmd.Context(), summary, usecases.FollowUpOptions{
				MeetingDate:  meetingDate,
				SenderName:   senderName,
				CompanyName:  companyName,
				ExtraContext: extraContext,
			})
			if err != nil {
				return err
			}

			if outPath == "" {
				formatter.Raw(email.PlainText())
				return nil
			}

			if err := usecases.SaveEmail(email, outPath); err != nil {
				return err
			}
			formatter.EmailSaved(outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&meetingDate, "date", "", "meeting date shown in the email")
	cmd.Flags().StringVar(&senderName, "sender", "", "sender name for the closing")
	cmd.Flags().StringVar(&companyName, "company", "", "company name for context")
	cmd.Flags().StringVarP(&extraContext, "context", "c", "", "extra context for the email")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (.html or .txt)")

	return cmd
}

// resolveSummary loads saved minutes directly, or summarizes the input when
// it is a transcript or audio file.
func resolveSummary(deps *Dependencies, cmd *cobra.Command, formatter *output.Formatter, path string) (*meeting.MeetingSummary, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		var summary meeting.MeetingSummary
		if err := json.Unmarshal(data, &summary); err == nil && summary.Summary != "" {
			return &summary, nil
		}
		// Not minutes; fall through and treat it as a transcript.
	}

	if usecases.IsAudioFile(path) {
		formatter.Transcribing(path)
	}
	transcript, err := deps.App.Summarize.ResolveTranscript(cmd.Context(), path)
	if err != nil {
		return nil, err
	}

	formatter.Summarizing()
	return deps.App.Summarize.Execute(cmd.Context(), transcript, usecases.SummarizeOptions{})
}
