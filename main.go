package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpupo63/electronics-site-backend/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	config.LoadDotEnv()
	cfg := config.New()
	config.SetupLogger(cfg)

	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd(cfg map[string]string) *cobra.Command {
	serve := newServeCmd(cfg)

	root := &cobra.Command{
		Use:           "electronics-site-backend",
		Short:         "API server for the electronics blog and project site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(
		serve,
		newMigrateCmd(cfg),
		newGenerateCmd(cfg),
		newCreateAdminCmd(cfg),
	)
	return root
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
