package cli

import (
	"github.com/spf13/cobra"
)

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jtac",
		Short: "Culture aware parsing and formatting of values",
		Long: `jtac converts text between culture formatted, neutral and native forms
using the registered type managers, and checks values against conditions.

Settings come from JTAC_CULTURE, JTAC_CULTURE_DIR, JTAC_LOG_LEVEL and
JTAC_LOG_FORMAT (or a .env file); flags override them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}
	rootCmd.SetOut(app.out)
	rootCmd.SetErr(app.err)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.flags.culture, "culture", "c", "", "Culture name, e.g. de-DE (default from JTAC_CULTURE)")
	flags.StringVar(&app.flags.cultureDir, "culture-dir", "", "Directory of YAML culture files to load")
	flags.StringVar(&app.flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&app.flags.logFormat, "log-format", "", "Log format: text or json")
	flags.StringArrayVarP(&app.flags.options, "option", "o", nil, "Type manager option as name=value (repeatable)")

	app.addConvertCommands(rootCmd)
	app.addCheckCommand(rootCmd)
	app.addListCommands(rootCmd)

	return rootCmd
}
