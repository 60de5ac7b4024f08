// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface using Cobra. It defines the
// root command (which generates the site when run bare), the subcommands,
// the flags, and the config bootstrap shared by all of them.

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/secretsanta/buildvars"
	"github.com/toeirei/secretsanta/internal/config"
	"github.com/toeirei/secretsanta/internal/i18n"
	"github.com/toeirei/secretsanta/internal/logging"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var (
	cfgFile string
	verbose bool

	appConfig config.Config
)

// setupDefaultServices loads configuration and initialises i18n and logging.
// It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	if verbose {
		logging.SetDebug(true)
	}

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	i18n.Init(appConfig.Language)
	if appConfig.Language != i18n.Lang() {
		logging.Warnf("language %q is not available, using %q", appConfig.Language, i18n.Lang())
	}
	logging.Debugf("loaded %d participants, output dir %s", len(appConfig.Participants), appConfig.Output.Dir)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cfgFile, verbose = "", false
	appConfig = config.Config{}

	cmd := &cobra.Command{
		Use:   "secretsanta",
		Short: "Draw a Secret Santa and publish one private page per participant.",
		Long: `Secret Santa draws who gives a gift to whom, making sure nobody draws
themselves, then writes one HTML page per participant revealing only their
own receiver, plus a shared index.html landing page.

Running without a subcommand is the same as "secretsanta generate".`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runGenerate,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is secretsanta.yaml in the user config dir, /etc/secretsanta or .)")
	applyGenerateFlags(cmd)

	cmd.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// applyGenerateFlags registers the flags shared by the root and generate
// commands. Names map onto config keys through config.FlagKeys.
func applyGenerateFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringSliceP("participant", "p", nil, "Participant name (repeat or comma-separate); replaces the configured list")
	f.StringP("out", "o", ".", "Directory the pages are written to")
	f.String("base-url", "", "Public URL prefix of the output directory")
	f.Bool("precompress", false, "Also write a .gz copy of every page")
	f.Int("token-length", 8, "Length of the random token in page filenames")
	f.Int("max-attempts", 1000, "Maximum number of draws before giving up")
	f.Uint64("seed", 0, "Seed for a reproducible draw (0 picks a random one)")
	f.StringP("language", "l", i18n.DefaultLang, `Page and report language ("fr", "en")`)
	f.String("mapping", "", "Write the full giver/receiver mapping to this file (.json or .yaml)")
	f.Bool("force", false, "Overwrite an existing mapping file")
	f.Bool("copy", false, "Copy the URL report to the clipboard")
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/secretsanta" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit passed via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
