package main

import (
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/mockskema"
	"github.com/reoring/mockskema/internal/config"
	"github.com/reoring/mockskema/internal/gen"
)

type generateFlags struct {
	configPath           string
	seed                 int64
	arrayCount           int
	locale               string
	fillProperties       bool
	optionalsProbability float64
	maxDepth             int
	count                int
	skipValidation       bool
	goPackage            string
	goVar                string

	seedSet bool
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate [schema]",
		Short: "Generate a mock value from a JSON or YAML schema file",
		Long: `Generates one value (or --count values as a JSON array) from the schema.
Use "-" to read the schema from stdin. The schema is checked with the advisory
validator first; --skip-validation generates anyway.

Example:
  mockskema generate user.json --seed 42
  mockskema generate user.yaml --count 10 --go-package fixtures --go-var Users`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, f, args[0])
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file with generation defaults")
	fl.Int64Var(&f.seed, "seed", 0, "PRNG seed (random when unset)")
	fl.IntVar(&f.arrayCount, "array-count", mockskema.DefaultArrayCount, "max array length when maxItems is absent")
	fl.StringVar(&f.locale, "locale", mockskema.DefaultLocale, "locale for validation messages")
	fl.BoolVar(&f.fillProperties, "fill-properties", true, "accepted for compatibility; no effect")
	fl.Float64Var(&f.optionalsProbability, "optionals-probability", mockskema.DefaultOptionalsProbability, "probability of emitting a non-required property")
	fl.IntVar(&f.maxDepth, "max-depth", 0, "fail when nesting exceeds this depth (0 = unbounded)")
	fl.IntVar(&f.count, "count", 1, "number of values to generate")
	fl.BoolVar(&f.skipValidation, "skip-validation", false, "generate even when advisory validation fails")
	fl.StringVar(&f.goPackage, "go-package", "", "emit Go source in this package instead of JSON")
	fl.StringVar(&f.goVar, "go-var", "Fixture", "variable name for --go-package output")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, f *generateFlags, path string) error {
	if f.configPath != "" {
		cfg, err := config.Read(f.configPath)
		if err != nil {
			return err
		}
		applyConfig(cmd, f, cfg)
	}
	if f.count < 1 {
		return fmt.Errorf("invalid --count %d: must be at least 1", f.count)
	}
	if !cmd.Flags().Changed("seed") && !f.seedSet {
		f.seed = time.Now().UnixNano()
	}
	log := a.logger.With(zap.String("schema", path), zap.Int64("seed", f.seed))

	schema, err := a.loadSchema(path)
	if err != nil {
		return err
	}
	if !f.skipValidation {
		if r := mockskema.ValidateForMockLocale(schema, f.locale); !r.Valid {
			for _, e := range r.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), e)
			}
			return fmt.Errorf("schema is not suitable for mock generation: %w", r.Err())
		}
	}

	opts := []mockskema.Option{
		mockskema.WithSeed(f.seed),
		mockskema.WithArrayCount(f.arrayCount),
		mockskema.WithLocale(f.locale),
		mockskema.WithFillProperties(f.fillProperties),
		mockskema.WithOptionalsProbability(f.optionalsProbability),
		mockskema.WithMaxDepth(f.maxDepth),
		mockskema.WithLogger(log),
	}

	var value any
	if f.count > 1 {
		value, err = mockskema.GenerateMany(cmd.Context(), schema, f.count, opts...)
	} else {
		value, err = mockskema.Generate(schema, opts...)
	}
	if err != nil {
		var unsupported *mockskema.UnsupportedFeatureError
		if errors.As(err, &unsupported) {
			log.Warn("schema uses an unsupported feature", zap.String("feature", unsupported.Feature), zap.String("at", unsupported.Path))
		}
		return err
	}
	log.Info("generated", zap.Int("count", f.count))

	out, err := render(f, path, value)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func render(f *generateFlags, path string, value any) ([]byte, error) {
	if f.goPackage != "" {
		return gen.RenderFixture(gen.Fixture{
			Package: f.goPackage,
			Var:     f.goVar,
			Value:   value,
			Header:  fmt.Sprintf("schema: %s seed: %d", path, f.seed),
		})
	}
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	return append(b, '\n'), nil
}

// applyConfig copies config values into flags the user did not set.
func applyConfig(cmd *cobra.Command, f *generateFlags, cfg *config.Config) {
	g := cfg.Generation
	changed := cmd.Flags().Changed
	if g.Seed != nil && !changed("seed") {
		f.seed = *g.Seed
		f.seedSet = true
	}
	if g.ArrayCount != nil && !changed("array-count") {
		f.arrayCount = *g.ArrayCount
	}
	if g.Locale != "" && !changed("locale") {
		f.locale = g.Locale
	}
	if g.FillProperties != nil && !changed("fill-properties") {
		f.fillProperties = *g.FillProperties
	}
	if g.OptionalsProbability != nil && !changed("optionals-probability") {
		f.optionalsProbability = *g.OptionalsProbability
	}
	if g.MaxDepth != nil && !changed("max-depth") {
		f.maxDepth = *g.MaxDepth
	}
	if g.Count != nil && !changed("count") {
		f.count = *g.Count
	}
	if g.SkipValidation && !changed("skip-validation") {
		f.skipValidation = true
	}
	if cfg.Output.GoPackage != "" && !changed("go-package") {
		f.goPackage = cfg.Output.GoPackage
	}
	if cfg.Output.GoVar != "" && !changed("go-var") {
		f.goVar = cfg.Output.GoVar
	}
}
