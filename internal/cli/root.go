package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/tui"
	"github.com/idilsaglam/packlist/internal/ui"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

const debugLogFile = "packlist-debug.log"

// Options tune the run from root flags.
type Options struct {
	Theme     string
	Lang      string
	Sort      string
	NoColor   bool
	AltScreen bool
	Debug     bool
	Summary   bool
}

// usageError marks errors caused by bad input on the command line.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Execute runs the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		ui.Fail(err.Error())
		var ue *usageError
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	opt := &Options{}

	cmd := &cobra.Command{
		Use:           "packlist",
		Short:         "A packing list for your next trip",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start packing
  packlist

  # Plain output, then print what you packed
  packlist --theme mono --summary

  # Sort descriptions with Swedish collation rules
  packlist --lang sv --sort description
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opt)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	cmd.Flags().StringVar(&opt.Theme, "theme", envOr("PACKLIST_THEME", "classic"), "Theme ("+strings.Join(ui.ThemeNames, "|")+")")
	cmd.Flags().StringVar(&opt.Lang, "lang", envOr("PACKLIST_LANG", "en"), "Language tag used to sort descriptions")
	cmd.Flags().StringVar(&opt.Sort, "sort", envOr("PACKLIST_SORT", string(model.SortInput)), "Initial sort order (input|description|packed)")
	cmd.Flags().BoolVar(&opt.NoColor, "no-color", false, "Disable colors (NO_COLOR is honoured too)")
	cmd.Flags().BoolVar(&opt.AltScreen, "alt-screen", true, "Run in the terminal's alternate screen")
	cmd.Flags().BoolVar(&opt.Debug, "debug", false, "Write a debug log to "+debugLogFile)
	cmd.Flags().BoolVar(&opt.Summary, "summary", false, "Print the final list as Markdown after quitting")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "packlist "+Version)
			return err
		},
	}
}

func run(out io.Writer, opt *Options) error {
	if err := ui.SetTheme(opt.Theme); err != nil {
		return &usageError{err}
	}
	tag, err := language.Parse(opt.Lang)
	if err != nil {
		return &usageError{fmt.Errorf("invalid --lang %q: %w", opt.Lang, err)}
	}
	mode, err := model.ParseSortMode(opt.Sort)
	if err != nil {
		return &usageError{err}
	}
	ui.ApplyColorProfile(opt.NoColor)

	closeLog, err := setupLogging(opt.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Printf("start theme=%s lang=%s", ui.Current().Name, tag)
	items, err := tui.Run(tui.Options{Language: tag, SortMode: mode, AltScreen: opt.AltScreen})
	if err != nil {
		return err
	}
	log.Printf("quit with %d items", len(items))

	if !opt.Summary {
		return nil
	}
	s, err := renderSummary(items, opt.NoColor || ui.Current().Name == "mono")
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, s)
	return err
}

// setupLogging routes the std logger to a file while the UI owns the terminal.
func setupLogging(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(debugLogFile, "packlist")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
