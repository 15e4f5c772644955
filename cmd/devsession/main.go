// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command devsession signs a viewer session token for local development.
//
// The web server only verifies sessions; in production they are minted by the
// sign-in service. This tool signs one with the same SESSION_SECRET so that a
// developer can browse as a given viewer:
//
//	SESSION_SECRET=dev devsession --user u1 --name ada --upstream-token <osf token>
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/config"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	var (
		userID        string
		username      string
		upstreamToken string
		timeToLive    time.Duration
	)

	command := &cobra.Command{
		Use:          "devsession",
		Short:        "Sign a viewer session token with SESSION_SECRET",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.SessionIssuer)
			if err != nil {
				return fmt.Errorf("devsession: %w", err)
			}

			token, err := tokens.IssueSession(userID, username, upstreamToken, timeToLive)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, token)
			return err
		},
	}

	command.Flags().StringVar(&userID, "user", "", "upstream user id")
	command.Flags().StringVar(&username, "name", "", "display name")
	command.Flags().StringVar(&upstreamToken, "upstream-token", "", "upstream API access token forwarded on the viewer's behalf")
	command.Flags().DurationVar(&timeToLive, "ttl", 12*time.Hour, "token lifetime")
	_ = command.MarkFlagRequired("user")

	return command
}
