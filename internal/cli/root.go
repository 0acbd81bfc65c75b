// Package cli implements the inkwell command line.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/inkwell/internal/version"
	"github.com/arthur-debert/inkwell/pkg/config"
	"github.com/arthur-debert/inkwell/pkg/console"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/logging"
	"github.com/arthur-debert/inkwell/pkg/terminal"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity     int
	configPath    string
	colorSystem   string
	width         int
	noColor       bool
	forceTerminal bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "inkwell",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// log lines go to stderr so they never land inside rendered output
			logging.SetupLoggerTo(cmd.ErrOrStderr(), g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&g.configPath, "config", "", MsgFlagConfig)
	flags.StringVar(&g.colorSystem, "color", "", MsgFlagColor)
	flags.IntVar(&g.width, "width", 0, MsgFlagWidth)
	flags.BoolVar(&g.noColor, "no-color", false, MsgFlagNoColor)
	flags.BoolVar(&g.forceTerminal, "force-terminal", false, MsgFlagForceTerminal)

	rootCmd.AddGroup(&cobra.Group{ID: "render", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPrintCmd(g))
	rootCmd.AddCommand(newTableCmd(g))
	rootCmd.AddCommand(newMarkdownCmd(g))
	rootCmd.AddCommand(newSpinCmd(g))
	rootCmd.AddCommand(newPaletteCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := initTopics(rootCmd, g); err != nil {
		log.Debug().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

// session is what a command needs to render: the merged configuration and
// a console bound to the command's output
type session struct {
	cfg     *config.Config
	console *console.Console
}

// newSession loads the configuration, applies flag overrides and probes the
// command's output stream
func newSession(cmd *cobra.Command, g *globalFlags) (*session, error) {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.colorSystem != "" {
		cfg.Console.ColorSystem = g.colorSystem
	}
	if g.width > 0 {
		cfg.Console.Width = g.width
	}
	if g.noColor {
		cfg.Console.NoColor = true
	}
	if g.forceTerminal {
		cfg.Console.ForceTerminal = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	caps, err := cfg.Capabilities(terminal.Probe(out))
	if err != nil {
		return nil, err
	}
	th, err := cfg.LoadTheme()
	if err != nil {
		return nil, err
	}

	c := console.New(out, caps,
		console.WithTheme(th),
		console.WithTabSize(cfg.Console.TabSize),
		console.WithSafeBox(cfg.Console.SafeBox),
	)
	logger.Debug().
		Str("colorSystem", caps.ColorSystem.String()).
		Int("width", caps.Width).
		Bool("terminal", c.IsTerminal()).
		Msg("Console ready")
	return &session{cfg: cfg, console: c}, nil
}
