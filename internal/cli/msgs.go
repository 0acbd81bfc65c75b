package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rich text and live displays for the terminal"
	MsgPrintShort      = "Print markup"
	MsgTableShort      = "Draw CSV from standard input as a table"
	MsgMarkdownShort   = "Render a Markdown file"
	MsgSpinShort       = "Run a command under a spinner"
	MsgPaletteShort    = "Preview color degradation"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgTopicsShort     = "Display available documentation topics"

	// Status messages
	MsgSpinDone     = "%s finished in %s"
	MsgNoTopics     = "No help topics available."
	MsgTopicsHeader = "Available help topics:"
	MsgTopicsFooter = "Use 'inkwell help <topic>' to read about a specific topic."

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrReadCSV     = "failed to read CSV"
	MsgErrReadFile    = "failed to read %s"
	MsgErrUnknownBox  = "unknown box %q"
	MsgErrUnknownHelp = "unknown help topic %q"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Config file (default $XDG_CONFIG_HOME/inkwell/config.toml)"
	MsgFlagColor         = "Color system: auto, none, 3bit, standard, 256 or truecolor"
	MsgFlagWidth         = "Render width in cells (0 uses the terminal width)"
	MsgFlagNoColor       = "Disable colors"
	MsgFlagForceTerminal = "Write escape sequences even when output is not a terminal"
	MsgFlagXML           = "Parse arguments as semantic XML tags"
	MsgFlagPanel         = "Draw a panel around the output"
	MsgFlagTitle         = "Title markup"
	MsgFlagNoHeader      = "Treat the first record as data"
	MsgFlagBox           = "Box style: square, rounded, heavy, double, ascii, ..."
	MsgFlagExpand        = "Fill the console width"
	MsgFlagLines         = "Draw a line between rows"
	MsgFlagGlamourTheme  = "Glamour style: dark, light, notty, ..."
	MsgFlagSpinner       = "Spinner animation (default from config)"
	MsgFlagMessage       = "Markup shown next to the spinner"
	MsgFlagTransient     = "Keep command output but drop the final status line"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/print-long.txt
	msgPrintLongRaw string
	MsgPrintLong    = strings.TrimSpace(msgPrintLongRaw)

	//go:embed msgs/print-example.txt
	msgPrintExampleRaw string
	MsgPrintExample    = strings.TrimRight(msgPrintExampleRaw, "\n")

	//go:embed msgs/table-long.txt
	msgTableLongRaw string
	MsgTableLong    = strings.TrimSpace(msgTableLongRaw)

	//go:embed msgs/table-example.txt
	msgTableExampleRaw string
	MsgTableExample    = strings.TrimRight(msgTableExampleRaw, "\n")

	//go:embed msgs/markdown-long.txt
	msgMarkdownLongRaw string
	MsgMarkdownLong    = strings.TrimSpace(msgMarkdownLongRaw)

	//go:embed msgs/spin-long.txt
	msgSpinLongRaw string
	MsgSpinLong    = strings.TrimSpace(msgSpinLongRaw)

	//go:embed msgs/spin-example.txt
	msgSpinExampleRaw string
	MsgSpinExample    = strings.TrimRight(msgSpinExampleRaw, "\n")

	//go:embed msgs/palette-long.txt
	msgPaletteLongRaw string
	MsgPaletteLong    = strings.TrimSpace(msgPaletteLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
