package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/plblum/jTAC-sub002/pkg/condition"
)

// ErrCheckFailed is returned by the check command when a condition fails.
var ErrCheckFailed = errors.New("check failed")

type checkFlags struct {
	field           string
	required        bool
	min             string
	max             string
	pattern         string
	caseInsensitive bool
}

// addCheckCommand adds the command that validates a value with conditions
func (app *App) addCheckCommand(rootCmd *cobra.Command) {
	var f checkFlags

	checkCmd := &cobra.Command{
		Use:   "check <type> <text>",
		Short: "Validate a value against conditions",
		Long: `Validate culture formatted text. The text must convert with the type
manager; --required, --min, --max and --pattern add further conditions.
Each failure is printed as "field: message" and the exit code is non-zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := app.typeManager(args[0])
			if err != nil {
				return err
			}
			conn := condition.Static(args[1])

			conditions := []condition.Condition{
				&condition.Required{Conn: conn, Disabled: !f.required},
				&condition.DataTypeCheck{Conn: conn, TypeManager: tm},
			}
			if f.min != "" || f.max != "" {
				r := &condition.Range{Conn: conn, TypeManager: tm}
				if f.min != "" {
					r.Min = f.min
				}
				if f.max != "" {
					r.Max = f.max
				}
				conditions = append(conditions, r)
			}
			if f.pattern != "" {
				re, err := condition.NewRegex(conn, f.pattern, f.caseInsensitive)
				if err != nil {
					return err
				}
				conditions = append(conditions, re)
			}

			err = condition.Apply(f.field, conditions...)
			verrs := condition.ExtractValidationErrors(err)
			for _, verr := range verrs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", verr.Field, verr.Message)
				app.Logger.DebugContext(cmd.Context(), "condition failed",
					slog.String("field", verr.Field),
					slog.String("key", verr.TranslationKey),
				)
			}
			if err != nil && verrs.IsEmpty() {
				return err
			}
			if !verrs.IsEmpty() {
				return ErrCheckFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	checkCmd.Flags().StringVar(&f.field, "field", "value", "Field name used in messages")
	checkCmd.Flags().BoolVar(&f.required, "required", false, "Reject blank text")
	checkCmd.Flags().StringVar(&f.min, "min", "", "Lowest allowed value, culture formatted")
	checkCmd.Flags().StringVar(&f.max, "max", "", "Highest allowed value, culture formatted")
	checkCmd.Flags().StringVar(&f.pattern, "pattern", "", "Regular expression the text must match")
	checkCmd.Flags().BoolVarP(&f.caseInsensitive, "ignore-case", "i", false, "Match --pattern without case")

	rootCmd.AddCommand(checkCmd)
}
