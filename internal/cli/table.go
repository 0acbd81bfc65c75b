package cli

import (
	"encoding/csv"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/inkwell/pkg/box"
	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/layout"
	"github.com/arthur-debert/inkwell/pkg/logging"
)

func newTableCmd(g *globalFlags) *cobra.Command {
	var (
		noHeader bool
		boxName  string
		title    string
		expand   bool
		lines    bool
	)

	cmd := &cobra.Command{
		Use:     "table",
		Short:   MsgTableShort,
		Long:    MsgTableLong,
		Example: MsgTableExample,
		GroupID: "render",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok := box.Get(boxName)
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownBox, boxName).
					WithDetail("box", boxName)
			}

			records, err := readCSV(cmd.InOrStdin())
			if err != nil {
				return err
			}
			logger := logging.GetLogger("cli.table")
			logger.Debug().Int("records", len(records)).Msg("CSV read")

			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}

			var headers []string
			if !noHeader && len(records) > 0 {
				headers, records = records[0], records[1:]
			}
			t, err := layout.NewTable(s.console.Theme(), headers...)
			if err != nil {
				return err
			}
			t.ShowHeader = len(headers) > 0
			t.Box = b
			t.Expand = expand
			t.ShowLines = lines
			if err := t.SetTitle(title); err != nil {
				return err
			}
			for _, record := range records {
				cells := make([]interface{}, len(record))
				for i, v := range record {
					cells[i] = v
				}
				if err := t.AddRow(cells...); err != nil {
					return err
				}
			}
			return s.console.Print(t)
		},
	}

	cmd.Flags().BoolVar(&noHeader, "no-header", false, MsgFlagNoHeader)
	cmd.Flags().StringVar(&boxName, "box", "square", MsgFlagBox)
	cmd.Flags().StringVar(&title, "title", "", MsgFlagTitle)
	cmd.Flags().BoolVar(&expand, "expand", false, MsgFlagExpand)
	cmd.Flags().BoolVar(&lines, "lines", false, MsgFlagLines)
	return cmd
}

// readCSV reads every record. Records may have different lengths; the table
// pads short rows.
func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadCSV)
	}
	return records, nil
}
