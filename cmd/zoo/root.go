package main

import (
	"fmt"
	"os"
	"time"

	"animal-zoo/internal/zooclient"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

type rootOptions struct {
	server  string
	timeout time.Duration
}

func (o *rootOptions) client() (*zooclient.Client, error) {
	return zooclient.New(o.server, o.timeout)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "zoo",
		Short: "Animal zoo: the factory demo and a client for the zoo API",
		Long: `zoo runs the animal model demo locally, or talks to a running
zoo API to admit residents, list them and make them act.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	cmd.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "Base URL of the zoo API")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP timeout for API calls")

	cmd.AddCommand(
		newDemoCmd(),
		newAdmitCmd(opts),
		newListCmd(opts),
		newActCmd(opts),
		newJournalCmd(opts),
		newCensusCmd(opts),
	)
	return cmd
}

// Execute arma el comando raíz y sale con 1 si falla.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
