package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sonyjtp/joke-bot/internal/config"
	"github.com/sonyjtp/joke-bot/internal/jokes"
	"github.com/sonyjtp/joke-bot/internal/session"
	"github.com/sonyjtp/joke-bot/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		category string
		language string
		maxSteps int
	)

	root := &cobra.Command{
		Use:           "jokebot",
		Short:         "Interactive joke-telling session",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags override file/env config; re-validate after applying.
			if cmd.Flags().Changed("category") {
				cfg.Session.Category = category
			}
			if cmd.Flags().Changed("language") {
				cfg.Session.Language = language
			}
			if cmd.Flags().Changed("max-steps") {
				cfg.Session.MaxSteps = maxSteps
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger.Init(cfg.App.LogLevel, nil)
			logger.Info("Starting joke session",
				logger.String("app", cfg.App.Name),
				logger.String("environment", cfg.App.Environment),
				logger.String("category", cfg.Session.Category),
				logger.String("language", cfg.Session.Language),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			controller, err := session.New(cfg.Session, jokes.NewCatalog())
			if err != nil {
				return err
			}

			sess, err := controller.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			logger.Info("Session ended", logger.Int("jokes_told", len(sess.Jokes)))
			return nil
		},
	}

	root.Flags().StringVar(&category, "category", "", "starting joke category: neutral|chuck|all")
	root.Flags().StringVar(&language, "language", "", "joke language: en|de|es")
	root.Flags().IntVar(&maxSteps, "max-steps", 0, "upper bound on session steps")
	return root
}
