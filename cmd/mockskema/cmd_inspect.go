package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/mockskema"
)

func newValidateCmd(a *app) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "validate [schema]",
		Short: "Check whether a schema is suitable for mock generation",
		Long: `Runs the advisory checks: $ref, dependencies, if/then/else and
properties/items nesting deeper than 10 levels are reported.
Exits non-zero when any issue is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := a.loadSchema(args[0])
			if err != nil {
				return err
			}
			r := mockskema.ValidateForMockLocale(schema, locale)
			if r.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			for _, e := range r.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return fmt.Errorf("%d issue(s) found", len(r.Issues))
		},
	}
	cmd.Flags().StringVar(&locale, "locale", mockskema.DefaultLocale, "message language (en, ja)")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "analyze [schema]",
		Short: "Print node, property and depth statistics for a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := a.loadSchema(args[0])
			if err != nil {
				return err
			}
			st, err := mockskema.Analyze(schema)
			if err != nil {
				return err
			}
			var out []byte
			switch format {
			case "json":
				out, err = json.MarshalIndent(st, "", "  ")
				out = append(out, '\n')
			case "yaml":
				out, err = yaml.Marshal(st)
			default:
				return fmt.Errorf("unknown output format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode stats: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "json", "output format (json, yaml)")
	return cmd
}
