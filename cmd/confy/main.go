// Command `confy` inspects configuration files written with pkg/confy.
//
// Usage:
//
//	confy path <app> [name]               - Print the configuration file path
//	confy show <app> [name]               - Print the stored configuration
//	confy staging <app> [name] [--clean]  - List (or clean) leftover staging files
//	confy version                         - Show version information
//
// Examples:
//
//	confy path myapp                      - ~/.config/myapp/default-config.toml on Linux
//	confy show myapp server               - Print ~/.config/myapp/server.toml
//	confy staging myapp --clean           - Remove staging files of dead writers
//
// An omitted name means "default-config".
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lc/confy/internal/buildinfo"
	"github.com/lc/confy/internal/codec"
	"github.com/lc/confy/internal/config"
	"github.com/lc/confy/internal/log"
	"github.com/lc/confy/pkg/confy"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds what every subcommand needs once flags are parsed.
type app struct {
	logLevel string
	settings config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "confy",
		Short: "Inspect confy configuration files",
		Long: `confy prints where an application's configuration lives, shows its
contents and finds staging files left behind by interrupted writes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides "+log.EnvLevel)

	// ---- path command ----
	pathCmd := &cobra.Command{
		Use:     "path <app> [name]",
		Short:   "Print the configuration file path",
		Example: "confy path myapp",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := confy.New[struct{}](confy.WithLogger[struct{}](a.logger)).ConfigurationFilePath(splitArgs(args))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	// ---- show command ----
	showCmd := &cobra.Command{
		Use:   "show <app> [name]",
		Short: "Print the stored configuration",
		Long: `Print the stored configuration of an application, decoded and
re-encoded with the compiled-in codec (` + codec.Name + `).`,
		Example: "confy show myapp server",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	// ---- staging command ----
	var clean bool
	stagingCmd := &cobra.Command{
		Use:   "staging <app> [name]",
		Short: "List staging files left by interrupted writes",
		Long: `List the staging files next to a configuration file. A staging file
outlives its write only when the writer died before renaming it.
With --clean, files whose writing process is no longer running are removed.`,
		Example: "confy staging myapp --clean",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.staging(cmd.OutOrStdout(), args, clean)
		},
	}
	stagingCmd.Flags().BoolVar(&clean, "clean", false, "remove staging files of dead writers")

	// ---- version command ----
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", buildinfo.Version)
			fmt.Fprintf(out, "commit: %s\n", buildinfo.Commit)
			fmt.Fprintf(out, "codec: %s\n", buildinfo.Codec)
		},
	}

	root.AddCommand(pathCmd, showCmd, stagingCmd, versionCmd)
	return root
}

func (a *app) init() error {
	// Settings are read before the logger exists. A broken file falls
	// back to the defaults.
	settings, err := config.New().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring confy settings: %v\n", err)
		settings = config.Settings{}.Default()
	}
	a.settings = settings

	l, err := log.New(log.Resolve(a.logLevel, settings.LogLevel))
	if err != nil {
		return err
	}
	a.logger = l

	switch settings.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
	return nil
}

func (a *app) show(out, errOut io.Writer, args []string) error {
	p := confy.New[map[string]any](confy.WithLogger[map[string]any](a.logger))
	path, err := p.ConfigurationFilePath(splitArgs(args))
	if err != nil {
		return err
	}
	doc, err := p.LoadPath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	data, err := codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("re-encoding %s: %w", path, err)
	}

	color.New(color.Bold).Fprintf(out, "# %s\n", path)
	_, _ = out.Write(data)

	if a.settings.ShowStaging {
		files, err := p.StagingFiles(path)
		if err != nil {
			a.logger.Warn("listing staging files", zap.String("path", path), zap.Error(err))
			return nil
		}
		if len(files) > 0 {
			color.New(color.FgYellow).Fprintf(errOut, "%d staging file(s) next to %s; see \"confy staging\"\n", len(files), path)
		}
	}
	return nil
}

func (a *app) staging(out io.Writer, args []string, clean bool) error {
	p := confy.New[struct{}](confy.WithLogger[struct{}](a.logger))
	path, err := p.ConfigurationFilePath(splitArgs(args))
	if err != nil {
		return err
	}

	if clean {
		removed, err := p.CleanStaging(path)
		for _, r := range removed {
			color.New(color.FgGreen, color.Bold).Fprintf(out, "✓ Removed ")
			fmt.Fprintln(out, r)
		}
		if err != nil {
			return err
		}
		if len(removed) == 0 {
			color.New(color.FgYellow).Fprintln(out, "No stale staging files found.")
		}
		return nil
	}

	files, err := p.StagingFiles(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No staging files found.")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"File", "PID", "Size", "Modified"})
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
	)
	table.SetBorder(false)
	for _, f := range files {
		table.Append([]string{f.Path, strconv.Itoa(f.PID), strconv.FormatInt(f.Size, 10), f.ModTime.Format(time.RFC3339)})
	}

	color.New(color.Bold).Fprintf(out, "STAGING FILES FOR %s:\n", path)
	table.Render()
	return nil
}

func splitArgs(args []string) (string, string) {
	if len(args) == 2 {
		return args[0], args[1]
	}
	return args[0], ""
}
