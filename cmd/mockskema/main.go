package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/mockskema/source"
)

// app carries state shared by the sub-commands.
type app struct {
	verbose bool
	logger  *zap.Logger
	stdin   io.Reader
}

func main() {
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	a := &app{stdin: stdin, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "mockskema",
		Short: "Generate reproducible mock JSON from a JSON Schema",
		Long: `mockskema synthesizes JSON values from a JSON Schema subset
(type, enum, const, anyOf/oneOf/allOf, numeric/string/array/object constraints
and common string formats).

Output is fully determined by the schema and the seed, so generated values
can be used as test fixtures.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			} else {
				config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(a), newValidateCmd(a), newAnalyzeCmd(a))
	return root
}

// loadSchema reads a schema file, or stdin when path is "-".
func (a *app) loadSchema(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %q: %w", path, err)
	}
	schema, err := source.Load(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema %q: %w", path, err)
	}
	a.logger.Debug("schema loaded", zap.String("path", path), zap.Int("bytes", len(data)))
	return schema, nil
}
