// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/secretsanta/internal/core"
	"github.com/toeirei/secretsanta/internal/core/slug"
	"github.com/toeirei/secretsanta/internal/i18n"
	"github.com/toeirei/secretsanta/internal/logging"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration without writing anything",
		Long: `Checks that the participant list can be drawn (at least two people,
no blank or duplicate names) and shows the filename prefix each
participant's page will get.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appConfig.Validate(); err != nil {
				return err
			}
			participants := appConfig.ParticipantList()
			if err := core.Check(participants); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bases := map[string]string{}
			for _, p := range participants {
				base := slug.Base(p.String())
				if other, ok := bases[base]; ok {
					// Tokens keep the filenames apart, but the prefixes no longer
					// tell the two pages apart at a glance.
					logging.Warnf("%q and %q share the filename prefix %q", other, p, base)
				}
				bases[base] = p.String()
				fmt.Fprintf(out, "%-25s %s-<token>.html\n", p, base)
			}
			fmt.Fprintln(out, i18n.T("cli.check_ok", len(participants)))
			return nil
		},
	}
}
