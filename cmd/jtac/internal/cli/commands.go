package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addConvertCommands adds the commands that run text through a type manager
func (app *App) addConvertCommands(rootCmd *cobra.Command) {
	parseCmd := &cobra.Command{
		Use:   "parse <type> <text>",
		Short: "Convert culture formatted text into its native value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := app.typeManager(args[0])
			if err != nil {
				return err
			}
			v, err := tm.ToValue(args[1])
			if err != nil {
				return err
			}
			if v == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "<null>")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v (%s)\n", v, tm.NativeKind())
			return nil
		},
	}

	formatCmd := &cobra.Command{
		Use:   "format <type> <text>",
		Short: "Reformat culture formatted text",
		Long: `Parse the text with the culture rules, then format the value again. The
output is the canonical form of the value in the selected culture.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := app.typeManager(args[0])
			if err != nil {
				return err
			}
			v, err := tm.ToValue(args[1])
			if err != nil {
				return err
			}
			s, err := tm.ToString(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	neutralCmd := &cobra.Command{
		Use:   "neutral <type> <text>",
		Short: "Convert culture formatted text into the neutral storage form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := app.typeManager(args[0])
			if err != nil {
				return err
			}
			v, err := tm.ToValue(args[1])
			if err != nil {
				return err
			}
			s, err := tm.ToStringNeutral(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	fromNeutralCmd := &cobra.Command{
		Use:   "from-neutral <type> <text>",
		Short: "Format a neutral storage value for the culture",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := app.typeManager(args[0])
			if err != nil {
				return err
			}
			v, err := tm.ToValueNeutral(args[1])
			if err != nil {
				return err
			}
			s, err := tm.ToString(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare <type> <a> <b>",
		Short: "Compare two culture formatted values",
		Long:  `Print -1, 0 or 1 as a is less than, equal to or greater than b.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := app.typeManager(args[0])
			if err != nil {
				return err
			}
			n, err := tm.Compare(args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	rootCmd.AddCommand(parseCmd, formatCmd, neutralCmd, fromNeutralCmd, compareCmd)
}

// addListCommands adds the commands that describe the registry and the
// culture store
func (app *App) addListCommands(rootCmd *cobra.Command) {
	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "List type manager names and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range app.Registry.Names() {
				if app.Registry.IsAlias(name) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (alias)\n", name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	culturesCmd := &cobra.Command{
		Use:   "cultures",
		Short: "List registered cultures",
		Long:  `List registered cultures. The store default is marked with *.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := app.Store.DefaultName()
			for _, name := range app.Store.Names() {
				label := name
				if label == "" {
					label = "(invariant)"
				}
				if name == def {
					label += " *"
				}
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}

	rootCmd.AddCommand(typesCmd, culturesCmd)
}
