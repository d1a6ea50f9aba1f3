package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/amishk599/isntthatodd/internal/ai"
	"github.com/amishk599/isntthatodd/internal/config"
	"github.com/amishk599/isntthatodd/internal/model"
	"github.com/amishk599/isntthatodd/internal/normalize"
	"github.com/amishk599/isntthatodd/internal/oracle"
)

// Process exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitCancelled = 130
)

const examples = `  isnt-that-odd 42                    # Check if 42 is even
  isnt-that-odd 43                    # Check if 43 is odd
  isnt-that-odd 0                     # Check if 0 is even
  isnt-that-odd -4                    # Check if -4 is even
  isnt-that-odd 10.5                  # Check if 10.5 is even
  isnt-that-odd '"17"'                # Check if the string "17" is even
  isnt-that-odd --model gpt-4 42      # Use a specific model
  isnt-that-odd --api-key KEY 42      # Use a custom API key`

var (
	cfgPath string
	modelID string
	apiKey  string
	baseURL string
	verbose bool
)

// newParityClient builds the inference client used by the root command.
var newParityClient = func(logger *slog.Logger) model.ParityClient {
	return ai.NewClient(logger)
}

var rootCmd = &cobra.Command{
	Use:   "isnt-that-odd [flags] <number>",
	Short: "Check if numbers are even using LLM APIs",
	Long: "isnt-that-odd asks a large language model whether a number is even.\n" +
		"The number can be an integer, a float or any other string.",
	Example:       examples,
	Version:       version,
	Args:          exactlyOneNumber,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&modelID, "model", "m", model.DefaultModel, "LLM model to use")
	flags.StringVarP(&apiKey, "api-key", "k", "", "API key for the LLM service (default: "+config.EnvAPIKey+" env var)")
	flags.StringVarP(&baseURL, "base-url", "u", "", "base URL for the LLM service, for open-source models (default: "+config.EnvBaseURL+" env var)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(&cfgPath, "config", "c", "", "path to config file (default: "+config.EnvConfig+" env var or the user config dir)")

	rootCmd.SetVersionTemplate(versionTemplate)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
}

// usageError marks a command-line mistake, reported with a pointer to --help.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exactlyOneNumber(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// execute runs the root command with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(protectNegativeNumbers(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	p := newPrinter(stdout, stderr)
	var uerr usageError
	switch {
	case errors.Is(err, model.ErrCancelled):
		p.cancelled()
		return exitCancelled
	case errors.As(err, &uerr):
		p.failure(err, false)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
	default:
		p.failure(err, verbose)
	}
	return exitFailure
}

// runCheck runs one parity judgment for the single argument and prints the verdict.
func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger(cmd.ErrOrStderr(), verbose)
	p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Resolve(cfgPath)
	if err != nil {
		return err
	}
	oracleCfg := cfg.Oracle(overridesFrom(cmd))

	number := normalize.Parse(args[0])
	if verbose {
		p.diagnostic(number, oracleCfg.Model)
	}

	even, err := oracle.NewInvoker(newParityClient(logger), logger).Invoke(cmd.Context(), number, oracleCfg)
	if err != nil {
		return err
	}

	p.result(number, even)
	return nil
}

// overridesFrom reports only the flags that were given on the command line,
// so config-file and environment values are not masked by flag defaults.
func overridesFrom(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	if cmd.Flags().Changed("model") {
		o.Model = &modelID
	}
	if cmd.Flags().Changed("api-key") {
		o.APIKey = &apiKey
	}
	if cmd.Flags().Changed("base-url") {
		o.BaseURL = &baseURL
	}
	return o
}

func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

var negativeNumber = regexp.MustCompile(`^-(?:\d|\.\d|(?i:inf|nan))`)

// flags whose value may be given as the next argument
var valueFlags = map[string]bool{
	"-m": true, "--model": true,
	"-k": true, "--api-key": true,
	"-u": true, "--base-url": true,
	"-c": true, "--config": true,
}

// protectNegativeNumbers moves positional arguments such as "-4" behind a
// "--" terminator so the flag parser does not read them as shorthand flags.
func protectNegativeNumbers(args []string) []string {
	out := make([]string, 0, len(args)+1)
	var positional []string
loop:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			break loop
		case valueFlags[arg] && i+1 < len(args):
			out = append(out, arg, args[i+1])
			i++
		case negativeNumber.MatchString(arg):
			positional = append(positional, arg)
		default:
			out = append(out, arg)
		}
	}
	if len(positional) == 0 {
		return out
	}
	out = append(out, "--")
	return append(out, positional...)
}
