// Package cli implements the fprime-bootstrap command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/fprime-bootstrap/internal/version"
	"github.com/arthur-debert/fprime-bootstrap/pkg/assets"
	"github.com/arthur-debert/fprime-bootstrap/pkg/bootstrap"
	"github.com/arthur-debert/fprime-bootstrap/pkg/config"
	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/arthur-debert/fprime-bootstrap/pkg/filesystem"
	"github.com/arthur-debert/fprime-bootstrap/pkg/logging"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the state shared by all commands of one invocation
type app struct {
	verbosity  int
	configFile string
	format     string
	noLogFile  bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func newApp() *app {
	return &app{}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fprime-bootstrap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr(), !a.noLogFile)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&a.format, "format", "", MsgFlagFormat)
	flags.BoolVar(&a.noLogFile, "no-log-file", false, MsgFlagNoLogFile)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(a.newProjectCmd())
	rootCmd.AddCommand(a.newTemplatesCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig layers flags that mirror config keys on top of the
// configuration files and environment
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}
	if f := cmd.Flags().Lookup("no-verify"); f != nil && f.Changed {
		if noVerify, err := cmd.Flags().GetBool("no-verify"); err == nil && noVerify {
			overrides["verify.enabled"] = false
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// renderer builds the renderer for w from the effective output format
func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	name := a.format
	if a.cfg != nil {
		name = a.cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

func (a *app) newProjectCmd() *cobra.Command {
	var (
		path     string
		name     string
		tmpl     string
		dryRun   bool
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:     "project [PATH]",
		Short:   MsgProjectShort,
		Long:    MsgProjectLong,
		Example: MsgProjectExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if path != "" {
					return errors.New(errors.ErrInvalidInput, "give the destination either as PATH or with --path, not both")
				}
				path = args[0]
			}

			opts := bootstrap.Options{
				Path:        path,
				ProjectName: name,
				Template:    tmpl,
				DryRun:      dryRun,
				Verify:      a.cfg.Verify.Enabled,
				Config:      a.cfg,
				FS:          filesystem.NewOS(),
			}

			res, err := bootstrap.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(display.NewProjectResult(res))
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", MsgFlagPath)
	cmd.Flags().StringVarP(&name, "name", "n", "", MsgFlagName)
	cmd.Flags().StringVarP(&tmpl, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, MsgFlagNoVerify)

	_ = cmd.RegisterFlagCompletionFunc("template", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return assets.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (a *app) newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		Long:    MsgTemplatesLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(display.NewTemplateList(a.cfg.Template.Default))
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := io.WriteString(out, config.DefaultContent())
				return err
			}

			data, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			if a.cfg.Source != "" {
				_, err = fmt.Fprintf(out, MsgConfigFile, a.cfg.Source)
			} else {
				_, err = fmt.Fprintf(out, MsgNoConfigFile, config.UserConfigPath())
			}
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// Execute runs the command line with args and returns the process exit
// code. Errors are rendered on stderr in the selected output format.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp()
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		renderer, rerr := a.renderer(stderr)
		if rerr != nil {
			renderer, _ = ui.NewRenderer(ui.FormatText, stderr)
		}
		_ = renderer.RenderError(err)
		return 1
	}
	return 0
}
