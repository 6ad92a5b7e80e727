package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/optguard/pkg/optionstore"
)

func newRulesCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rule names in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, ctx, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close(ctx) }()

			for _, name := range svc.Catalog().Set(ctx).Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newOptionsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List registered options and their rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, ctx, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close(ctx) }()

			out := cmd.OutOrStdout()
			for _, name := range svc.Registry().Options() {
				a, _ := svc.Registry().Lookup(name)
				if !a.Structured() {
					fmt.Fprintf(out, "%s\t%s\n", name, a.Rule)
					continue
				}
				for _, f := range a.Fields {
					fmt.Fprintf(out, "%s.%s\t%s\n", name, f.Field, f.Rule)
				}
			}
			return nil
		},
	}
}

func newValidateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every association names a known rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, ctx, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close(ctx) }()

			if err := svc.Validate(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newGetCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print the stored value of an option as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, ctx, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close(ctx) }()

			value, err := svc.Get(ctx, args[0])
			if err != nil {
				if optionstore.IsNotFound(err) {
					return fmt.Errorf("option %q is not set: %w", args[0], err)
				}
				return err
			}
			return printJSON(cmd, value)
		},
	}
}

func newSetCmd(open opener) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Sanitize and store an option value",
		Long: `Sanitize VALUE with the rules associated with NAME and store the result.
VALUE is parsed as JSON; text that is not valid JSON is stored as a string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, ctx, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close(ctx) }()

			value := parseValue(args[1], raw)
			changed, err := svc.Update(ctx, args[0], value)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "unchanged")
				return nil
			}

			stored, err := svc.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, stored)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "store VALUE as a string without JSON parsing")
	return cmd
}

func newDeleteCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, ctx, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close(ctx) }()

			return svc.Delete(ctx, args[0])
		},
	}
}

func parseValue(s string, raw bool) any {
	if raw {
		return s
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

func printJSON(cmd *cobra.Command, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Join(optionstore.ErrEncode, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
