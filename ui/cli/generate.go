// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/toeirei/secretsanta/internal/core"
	"github.com/toeirei/secretsanta/internal/logging"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Draw the assignment and write the pages",
		Long: `Draws a fresh assignment, writes one page per participant named
<name>-<token>.html plus index.html into the output directory, and prints
the URL of every page. Each run uses new random tokens, so links from a
previous run stop matching the new pages.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := appConfig.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := core.RunOptions{
		Participants: appConfig.ParticipantList(),
		Event:        appConfig.Event,
		Seed:         appConfig.Match.Seed,
		MaxAttempts:  appConfig.Match.MaxAttempts,
		TokenLength:  appConfig.Token.Length,
		OutputDir:    appConfig.Output.Dir,
		BaseURL:      appConfig.Output.BaseURL,
		Precompress:  appConfig.Output.Precompress,
		MappingPath:  appConfig.Mapping.Path,
		ForceMapping: appConfig.Mapping.Force,
		Copy:         appConfig.Report.Copy,
		Styled:       isTerminal(out),
		Version:      cmd.Root().Version,
	}

	res, err := core.Generate(opts, out)
	if err != nil {
		return err
	}
	logging.Debugf("wrote %d pages to %s", len(res.Links), appConfig.Output.Dir)
	return nil
}
