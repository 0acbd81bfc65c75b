package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/render"
	"github.com/arthur-debert/inkwell/pkg/style"
)

//go:embed topics
var topicsFS embed.FS

// optionPrefix marks topics that document a flag: "option-color" answers
// both "help option-color" and "help --color"
const optionPrefix = "option-"

// Topic is a help page that is not a command
type Topic struct {
	Name    string
	Path    string
	Content string
}

// TopicManager finds help topics in a file system. Markdown topics are
// rendered as Markdown; everything else is markup.
type TopicManager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
}

// NewTopicManager creates a manager for fsys. Without extensions ".md" and
// ".txt" files are topics.
func NewTopicManager(fsys fs.FS, extensions ...string) *TopicManager {
	if len(extensions) == 0 {
		extensions = []string{".md", ".txt"}
	}
	return &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: extensions,
	}
}

// Scan loads every topic file
func (tm *TopicManager) Scan() error {
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}
		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, e := range tm.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get returns a topic by name. Flag names such as "--color" find the
// matching option topic.
func (tm *TopicManager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := tm.topics[name]; ok {
		return t, true
	}
	t, ok := tm.topics[optionPrefix+name]
	return t, ok
}

// Names returns the topic names in sorted order
func (tm *TopicManager) Names() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Renderable turns a topic into something a console can print. Markup
// topics resolve tag names through r.
func (tm *TopicManager) Renderable(t *Topic, r style.Resolver) (render.Renderable, error) {
	if path.Ext(t.Path) == ".md" {
		return render.NewMarkdown(t.Content), nil
	}
	return render.FromMarkup(strings.TrimRight(t.Content, "\n"), r)
}

// Listing renders the topic index, general topics before option topics
func (tm *TopicManager) Listing() render.Renderable {
	var general, options []string
	for _, name := range tm.Names() {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, "  --"+strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, "  "+name)
		}
	}

	items := []render.Renderable{render.NewText(MsgTopicsHeader, style.Null)}
	if len(general) > 0 {
		items = append(items, render.MustMarkup("\n[bold]General topics:[/bold]"),
			render.NewText(strings.Join(general, "\n"), style.Null))
	}
	if len(options) > 0 {
		items = append(items, render.MustMarkup("\n[bold]Option topics:[/bold]"),
			render.NewText(strings.Join(options, "\n"), style.Null))
	}
	items = append(items, render.NewText("\n"+MsgTopicsFooter, style.Null))
	return render.NewGroup(items...)
}

// initTopics replaces cobra's help command with one that also knows the
// embedded topics
func initTopics(rootCmd *cobra.Command, g *globalFlags) error {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return err
	}
	tm := NewTopicManager(sub)
	if err := tm.Scan(); err != nil {
		return fmt.Errorf("failed to scan topics: %w", err)
	}
	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:     "help [command or topic]",
		Short:   "Help about any command or topic",
		GroupID: "misc",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  inkwell help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				originalHelp(rootCmd, args)
				return nil
			}
			if args[0] == "topics" {
				if len(tm.Names()) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), MsgNoTopics)
					return nil
				}
				s, err := newSession(cmd, g)
				if err != nil {
					return err
				}
				return s.console.Print(tm.Listing())
			}
			if topic, ok := tm.Get(args[0]); ok {
				s, err := newSession(cmd, g)
				if err != nil {
					return err
				}
				r, err := tm.Renderable(topic, s.console.Theme())
				if err != nil {
					return err
				}
				return s.console.Print(r)
			}
			target, _, err := rootCmd.Find(args)
			if err != nil || target == rootCmd {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownHelp, args[0]).
					WithDetail("topic", args[0])
			}
			originalHelp(target, nil)
			return nil
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
	return nil
}
