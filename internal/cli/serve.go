package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adelsonfagundes/ClareIA/internal/output"
	"github.com/adelsonfagundes/ClareIA/internal/web"
)

func NewServeCmd(deps *Dependencies) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web upload UI",
		Long:  "Start a local web server with an upload form for transcribing audio and generating minutes in the browser.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Config.RequireOpenAI(); err != nil {
				return err
			}

			formatter := output.NewFormatter(os.Stdout)
			formatter.Serving(addr)

			server := web.NewServer(deps.App)
			return server.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")

	return cmd
}
