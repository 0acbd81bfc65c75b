package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/inkwell/pkg/console"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/live"
	"github.com/arthur-debert/inkwell/pkg/logging"
	"github.com/arthur-debert/inkwell/pkg/markup"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/style"
)

func newSpinCmd(g *globalFlags) *cobra.Command {
	var (
		spinnerName string
		message     string
	)

	cmd := &cobra.Command{
		Use:     "spin [flags] -- COMMAND [ARG...]",
		Short:   MsgSpinShort,
		Long:    MsgSpinLong,
		Example: MsgSpinExample,
		GroupID: "render",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}

			sp, err := newCommandSpinner(s, spinnerName, message, args)
			if err != nil {
				return err
			}

			start := time.Now()
			err = live.RunSpinner(cmd.Context(), s.console, sp, func(ctx context.Context) error {
				return runCommand(ctx, s.console, args)
			}, live.WithConfig(s.cfg.Live))
			elapsed := time.Since(start).Round(time.Millisecond)

			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), formatSuccess(fmt.Sprintf(MsgSpinDone, args[0], elapsed)))
			return nil
		},
	}

	cmd.Flags().StringVar(&spinnerName, "spinner", "", MsgFlagSpinner)
	cmd.Flags().StringVarP(&message, "message", "m", "", MsgFlagMessage)
	return cmd
}

// newCommandSpinner picks the animation from the flag or the configuration.
// The configured interval only applies to the configured animation.
func newCommandSpinner(s *session, name, message string, args []string) (*live.Spinner, error) {
	fromConfig := name == ""
	if fromConfig {
		name = s.cfg.Spinner.Name
	}
	if message == "" {
		message = "Running [bold]" + markup.Escape(strings.Join(args, " ")) + "[/bold]"
	}

	sp, err := live.NewSpinner(name, message, s.console.Theme())
	if err != nil {
		return nil, err
	}
	if fromConfig && s.cfg.Spinner.Interval > 0 {
		sp.Animation.Interval = s.cfg.Spinner.Interval
	}
	return sp, nil
}

// runCommand runs args and prints each line of its combined output above
// the spinner. Output is shown as is, never parsed as markup.
func runCommand(ctx context.Context, c *console.Console, args []string) error {
	logger := logging.GetLogger("cli.spin")

	pr, pw := io.Pipe()
	command := exec.CommandContext(ctx, args[0], args[1:]...)
	command.Stdout = pw
	command.Stderr = pw

	copied := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(pr)
		var printErr error
		for scanner.Scan() {
			if printErr != nil {
				continue
			}
			printErr = c.PrintContext(ctx, render.NewText(scanner.Text(), style.Null))
		}
		if printErr == nil {
			printErr = scanner.Err()
		}
		// drain so the command never blocks on a full pipe
		_, _ = io.Copy(io.Discard, pr)
		copied <- printErr
	}()

	done := logging.LogOperationStart(logger.With().Strs("args", args).Logger(), "command")
	runErr := command.Run()
	done()
	_ = pw.Close()
	copyErr := <-copied

	if runErr != nil {
		return errors.Wrapf(runErr, errors.ErrCommandFailed, "%s failed", args[0]).
			WithDetail("args", args)
	}
	if copyErr != nil {
		logger.Debug().Err(copyErr).Msg("Command output lost")
	}
	return nil
}
