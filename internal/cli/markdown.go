package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/render"
)

func newMarkdownCmd(g *globalFlags) *cobra.Command {
	var glamourTheme string

	cmd := &cobra.Command{
		Use:     "markdown FILE",
		Aliases: []string{"md"},
		Short:   MsgMarkdownShort,
		Long:    MsgMarkdownLong,
		GroupID: "render",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}
			md := render.NewMarkdown(source)
			if glamourTheme != "" {
				md.Theme = glamourTheme
			}
			return s.console.Print(md)
		},
	}

	cmd.Flags().StringVar(&glamourTheme, "theme", "", MsgFlagGlamourTheme)
	return cmd
}

// readSource reads a file, or standard input for "-"
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, MsgErrReadFile, path).
			WithDetail("path", path)
	}
	return string(data), nil
}
