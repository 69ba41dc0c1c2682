package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"monkey/internal/config"
	"monkey/internal/parser"
)

var log = commonlog.GetLogger("monkey.cli")

// errReported is returned once diagnostics have already been printed, so
// that the process exits non-zero without printing anything else.
var errReported = errors.New("diagnostics reported")

// options holds the persistent flags and the configuration they resolve to.
type options struct {
	configPath string
	verbose    bool
	noColor    bool

	cfg *config.Config
}

// NewRootCommand builds the monkey command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "monkey",
		Short: "Tokenizer and parser for the monkey language",
		Long: `monkey reads monkey source code and reports what the front end sees.

Commands:
  tokens   - print the token stream
  parse    - print the syntax tree
  check    - report syntax errors only
  explain  - describe a diagnostic code

Sources are read from a file, or from stdin when the path is "-".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $MONKEY_CONFIG, ./monkey.toml or ./monkey.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newTokensCommand(opts),
		newParseCommand(opts),
		newCheckCommand(opts),
		newExplainCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command line and prints any error that was not
// already reported as diagnostics.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && err != errReported {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func (o *options) setup() error {
	var err error
	if o.configPath != "" {
		o.cfg, err = config.Load(o.configPath)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	verbosity := o.cfg.Log.Verbosity
	if o.verbose {
		verbosity = max(verbosity, 2)
	}
	var logPath *string
	if o.cfg.Log.Path != "" {
		logPath = &o.cfg.Log.Path
	}
	commonlog.Configure(verbosity, logPath)

	// color.NoColor starts out reflecting whether stdout is a terminal
	enabled := o.cfg.ColorEnabled(!color.NoColor) && !o.noColor
	color.NoColor = !enabled

	log.Debugf("configuration: color=%s format=%s sync=%v max_depth=%d",
		o.cfg.Color, o.cfg.Format, o.cfg.SyncTokens, o.cfg.MaxDepth)

	return nil
}

func (o *options) parserOptions() ([]parser.Option, error) {
	return o.cfg.ParserOptions()
}

// readSource loads the named file, or stdin for "-".
func readSource(cmd *cobra.Command, path string) (string, string, error) {
	if path == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return path, string(content), nil
}

func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(format, args...))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("error:"), err)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
