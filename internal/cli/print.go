package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/inkwell/pkg/markup"
	"github.com/arthur-debert/inkwell/pkg/render"
)

func newPrintCmd(g *globalFlags) *cobra.Command {
	var (
		xml   bool
		panel bool
		title string
	)

	cmd := &cobra.Command{
		Use:     "print [markup...]",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		GroupID: "render",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}
			c := s.console

			var body render.Renderable
			if xml {
				runs, err := markup.ParseXML(strings.Join(args, " "), c.Theme(), !c.Capabilities().SupportsAnsi)
				if err != nil {
					return err
				}
				body = render.FromRuns(runs)
			} else {
				objs := make([]interface{}, len(args))
				for i, arg := range args {
					objs[i] = arg
				}
				items, err := c.Renderables(objs...)
				if err != nil {
					return err
				}
				body = render.NewGroup(items...)
			}

			if panel || title != "" {
				p := render.NewPanel(body)
				if err := p.SetTitle(title, c.Theme()); err != nil {
					return err
				}
				body = p
			}
			return c.Print(body)
		},
	}

	cmd.Flags().BoolVar(&xml, "xml", false, MsgFlagXML)
	cmd.Flags().BoolVar(&panel, "panel", false, MsgFlagPanel)
	cmd.Flags().StringVar(&title, "title", "", MsgFlagTitle)
	return cmd
}
