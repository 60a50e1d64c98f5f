// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"ir-verbs/cmd/tui"
	"ir-verbs/internal/config"
	"ir-verbs/internal/logger"
	"ir-verbs/internal/quiz"
	"ir-verbs/internal/ui"
	"ir-verbs/internal/verb"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("error already reported")

// rootOptions holds the root command flags.
type rootOptions struct {
	dataFile     string
	strict       bool
	seed         uint64
	maxAnswerLen int
	useTUI       bool
	verbose      bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "irverbs <from_form_name> <to_form_name_1> [to_form_name_2]",
		Short: "An interrogation program for irregular verbs",
		Long: `An interrogation program for irregular verbs.

Shows a verb in one form and asks for one or two other forms, going through
every verb of the table once in random order. Form names are "base",
"past simple" and "past participle". Type 0 at any prompt to stop.

Verbs come from the table built into the program, or from a CSV file given
with --data or configured in ~/.config/ir-verbs/config.yaml.`,
		Example: `  irverbs base "past simple"
  irverbs base "past participle"
  irverbs "past participle" base "past simple"
  irverbs --tui base "past simple" "past participle"`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: formCompletionFunc,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			opts.applyFlags(cmd, &cfg)
			opts.cfg = cfg

			logger.InitLogger(logger.Options{Level: cfg.LogLevel, Stderr: opts.verbose})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.dataFile, "data", "d", "", "CSV file with base,past_simple,past_participle rows")
	flags.BoolVar(&opts.strict, "strict", false, "reject data rows with missing forms")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for the question order (0 picks a new order)")
	flags.IntVar(&opts.maxAnswerLen, "max-answer-len", 0, "characters of an answer that are kept")
	flags.BoolVar(&opts.useTUI, "tui", false, "use the full-screen interface")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "mirror log records to stderr")

	rootCmd.AddCommand(newFormsCmd())
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// applyFlags lets explicitly set flags override the file and environment.
func (o *rootOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Lookup("data") != nil && flags.Changed("data") {
		cfg.DataFile = o.dataFile
	}
	if flags.Lookup("strict") != nil && flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Lookup("max-answer-len") != nil && flags.Changed("max-answer-len") {
		cfg.AnswerMaxLen = o.maxAnswerLen
	}
}

// RunCLI executes the root command and exits non-zero on failure.
func RunCLI() {
	err := newRootCmd().Execute()
	if err != nil {
		if !errors.Is(err, errReported) {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// runQuiz validates the mode, loads the table and runs one interrogation.
func runQuiz(cmd *cobra.Command, opts *rootOptions, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	mode, err := quiz.ParseMode(args)
	if err != nil {
		errorColor.Fprintf(stderr, "%s!\n\n", sentence(err.Error()))
		printInstructions(stderr)
		return errReported
	}

	cfg := opts.cfg
	logger.Info("Starting interrogation", "mode", mode.String(), "data_file", cfg.DataFile, "tui", opts.useTUI)

	engineOpts := []quiz.EngineOption{quiz.WithRand(quiz.NewRand(cfg.Seed))}
	load := tableLoader(cfg)

	var result quiz.Result
	if opts.useTUI {
		result, err = tui.RunTUI(ui.Options{
			Mode:          mode,
			Load:          load,
			EngineOptions: engineOpts,
			MaxAnswerLen:  cfg.AnswerMaxLen,
		})
		if err != nil {
			logger.Error("Interactive session failed", "error", err)
			errorColor.Fprintf(stderr, "%v\n", err)
			return errReported
		}
	} else {
		quiz.PrintBanner(stdout, mode)

		table, err := loadWithSpinner(stdout, load)
		if err != nil {
			logger.Error("Failed to load verbs", "error", err)
			errorColor.Fprintf(stderr, "Error loading verbs: %v\n", err)
			return errReported
		}

		engine := quiz.NewEngine(mode, table, engineOpts...)
		session := quiz.NewSession(engine, cmd.InOrStdin(), stdout, quiz.WithMaxAnswerLen(cfg.AnswerMaxLen))
		result, err = session.Run(cmd.Context())
		if err != nil {
			quiz.PrintStatus(stdout, result)
			return err
		}
	}

	quiz.PrintStatus(stdout, result)
	logger.Info("Interrogation finished",
		"questions", result.Questions, "correct", result.Correct, "aborted", result.Aborted)
	return nil
}

// tableLoader returns the loader for the configured data file, or for the
// embedded table when none is configured.
func tableLoader(cfg config.Config) func() (verb.Table, error) {
	loadOpts := []verb.LoadOption{verb.WithStrict(cfg.Strict)}
	if cfg.DataFile == "" {
		return func() (verb.Table, error) {
			return verb.LoadDefault(loadOpts...)
		}
	}
	return func() (verb.Table, error) {
		path, err := config.ResolvePath(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		return verb.Load(path, loadOpts...)
	}
}

// loadWithSpinner runs load, showing a spinner when out is a terminal.
func loadWithSpinner(out io.Writer, load func() (verb.Table, error)) (verb.Table, error) {
	if !isTerminal(out) {
		return load()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Color("cyan")
	s.Suffix = " Loading verbs..."
	s.Start()
	defer s.Stop()
	return load()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printInstructions prints the usage text shown after an argument error.
func printInstructions(w io.Writer) {
	fmt.Fprint(w, "An interrogation program for irregular verbs.\n\n")
	fmt.Fprint(w, "Usage:\n")
	fmt.Fprint(w, "\tirverbs <from_form_name> <to_form_name_1> [to_form_name_2]\n")
	fmt.Fprint(w, "Examples:\n")
	fmt.Fprint(w, "\tirverbs base \"past simple\"\n")
	fmt.Fprint(w, "\tirverbs base \"past participle\"\n")
	fmt.Fprint(w, "\tirverbs \"past participle\" base \"past simple\"\n")
	fmt.Fprintf(w, "Form names: %s\n", quotedFormNames())
}

func quotedFormNames() string {
	names := verb.FormNames()
	for i, n := range names {
		if strings.Contains(n, " ") {
			names[i] = `"` + n + `"`
		}
	}
	return strings.Join(names, ", ")
}

// sentence capitalizes the first letter of msg.
func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
