package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/adelsonfagundes/ClareIA/config"
	"github.com/adelsonfagundes/ClareIA/internal/app"
	"github.com/adelsonfagundes/ClareIA/internal/cli"
	"github.com/adelsonfagundes/ClareIA/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		if errors.Is(err, config.ErrMissingCredential) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}

	deps := &cli.Dependencies{
		App:    application,
		Config: cfg,
	}

	return cli.NewRootCmd(deps).Execute()
}
