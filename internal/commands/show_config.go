package parabolic

import (
	"github.com/mwiater/parabolic/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	showConfigYAML bool
	showConfigDump bool
)

// showCmd represents the 'show' command group for displaying resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying resources",
	Long:  `The 'show' command groups subcommands that display resources or information related to parabolic.`,
}

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by environment variables and flags accordingly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		fallback := appconfig.Config{
			Debug:        viper.GetBool("debug"),
			LogFile:      viper.GetString("logFile"),
			Seed:         viper.GetInt64("seed"),
			GraphRange:   viper.GetInt("graphRange"),
			ShowEquation: viper.GetBool("showEquation"),
			NoColor:      viper.GetBool("noColor"),
		}
		if showConfigYAML || showConfigDump {
			if cfg == nil {
				cfg = &fallback
			}
			return appconfig.Dump(cmd.OutOrStdout(), *cfg, showConfigYAML)
		}
		file := ""
		if cfg != nil {
			file = cfg.ConfigPath
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), file, cfg, fallback)
		return nil
	},
}

func init() {
	showConfigCmd.Flags().BoolVar(&showConfigYAML, "yaml", false, "print the merged config as YAML")
	showConfigCmd.Flags().BoolVar(&showConfigDump, "dump", false, "pretty-print the merged config struct")
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
