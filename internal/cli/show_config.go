// internal/cli/show_config.go
package ckpoint

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prajaktaborse1234/synthmerge/internal/appconfig"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:   viper.GetBool("debug"),
			NoColor: viper.GetBool("noColor"),
			LogFile: viper.GetString("logFile"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
