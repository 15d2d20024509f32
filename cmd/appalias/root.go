package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/appalias/internal/version"
	"github.com/arthur-debert/appalias/pkg/commands/create"
	"github.com/arthur-debert/appalias/pkg/commands/resolve"
	"github.com/arthur-debert/appalias/pkg/config"
	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/logging"
	"github.com/arthur-debert/appalias/pkg/paths"
	"github.com/arthur-debert/appalias/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		dryRun     bool
		force      bool
		targetMode bool
	)

	rootCmd := &cobra.Command{
		Use:     "appalias <source.app> <target.app>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			style.Init(cfg.Output.Color)

			if targetMode {
				return runResolve(cmd, cfg, args)
			}
			return runCreate(cmd, cfg, args, force, dryRun, out)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, MsgFlagForce)
	rootCmd.Flags().BoolVar(&targetMode, "target", false, MsgFlagTarget)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runCreate handles the default create mode. The four user-facing outcomes
// (usage, bad suffix, target exists, success) print a fixed message and
// return nil; everything else propagates as an error.
func runCreate(cmd *cobra.Command, cfg *config.Config, args []string, force, dryRun bool, out io.Writer) error {
	if len(args) < 2 {
		fmt.Fprintln(out, MsgUsage)
		return nil
	}

	source, target := args[0], args[1]

	if !paths.HasAppSuffix(source) || !paths.HasAppSuffix(target) {
		fmt.Fprintln(out, style.Error(MsgErrFormat))
		return nil
	}

	// Stat the same path CreateAlias will use, so a ~-prefixed existing
	// target still hits the fixed exists message.
	target, err := paths.Normalize(target)
	if err != nil {
		return err
	}

	if _, err := os.Stat(target); err == nil && !force {
		fmt.Fprintln(out, style.Error(MsgErrExists))
		return nil
	}

	result, err := create.CreateAlias(cmd.Context(), create.Options{
		Source: source,
		Target: target,
		Force:  force,
		DryRun: dryRun,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	if result.DryRun {
		fmt.Fprintln(out, style.Muted(MsgDryRunNotice))
		return nil
	}

	fmt.Fprintf(out, MsgCreatedFormat, style.Success("Created"), style.Path(result.Target), style.Path(result.Source))
	return nil
}

// runResolve handles --target mode
func runResolve(cmd *cobra.Command, cfg *config.Config, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) < 1 {
		fmt.Fprintln(out, MsgUsage)
		return nil
	}

	result, err := resolve.ResolveTarget(cmd.Context(), resolve.Options{
		Target: args[0],
		Config: cfg,
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrAliasResolve) {
			fmt.Fprintln(out, style.Error(MsgErrResolve))
			return nil
		}
		return err
	}

	fmt.Fprintln(out, result.OriginalPath)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "appalias version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
