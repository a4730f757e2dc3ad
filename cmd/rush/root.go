package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rushlang/rush/eval"
)

var (
	parseOnly bool
	replMode  bool
	defines   []string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "rush [flags] <expression>",
	Short: "Evaluate expressions, over standard input line by line or standalone",
	Long: `rush evaluates a single expression.

When standard input is piped in, the expression is applied to every input
line with the current line bound as _ (also _s, and as _i, _f and _b when it
converts to an integer, float or boolean); each result is printed on its own
line. Otherwise the expression is evaluated once and the result printed.

With no expression and a terminal attached, an interactive session starts.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger()
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		bindings, err := parseDefines(defines)
		if err != nil {
			return err
		}

		if replMode || len(args) == 0 {
			if len(args) == 0 && stdinIsPiped() {
				return errors.New("an expression is required when input is piped")
			}
			return runREPL(bindings)
		}
		return run(args[0], bindings, cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rush: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&parseOnly, "parse", "p", false, "print the parsed form of the expression and exit")
	rootCmd.Flags().BoolVar(&replMode, "repl", false, "start an interactive session")
	rootCmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "bind a name for the expression, as name=value (repeatable)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level")
}

func run(input string, bindings map[string]eval.Value, cmd *cobra.Command) error {
	if parseOnly {
		expr, err := eval.Parse(input)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), expr)
		return nil
	}

	if stdinIsPiped() {
		zap.S().Debugw("applying expression to input lines", "expression", input)
		return applyWithBindings(input, bindings, cmd)
	}

	result, err := eval.Eval(input, bindings)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// applyWithBindings is eval.Apply with the -D bindings layered under the
// per-line ones.
func applyWithBindings(input string, bindings map[string]eval.Value, cmd *cobra.Command) error {
	if len(bindings) == 0 {
		return eval.Apply(input, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	expr, err := eval.Parse(input)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lineBindings := eval.LineBindings(scanner.Text())
		for name, value := range bindings {
			if _, ok := lineBindings[name]; !ok {
				lineBindings[name] = value
			}
		}
		result, err := eval.Evaluate(expr, lineBindings)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return scanner.Err()
}

// parseDefines turns -D name=value pairs into bindings. Values are parsed as
// an integer, float, or boolean when they look like one, and kept as strings
// otherwise.
func parseDefines(pairs []string) (map[string]eval.Value, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	bindings := make(map[string]eval.Value, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid definition %q, expected name=value", pair)
		}
		bindings[name] = parseDefineValue(raw)
	}
	return bindings, nil
}

func parseDefineValue(raw string) eval.Value {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return eval.NewInt(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return eval.NewFloat(f)
	}
	if raw == "true" || raw == "false" {
		return eval.NewBool(raw == "true")
	}
	return eval.NewString(raw)
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func setupLogger() *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.WarnLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(logLevel)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	logger, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}
	return logger
}
