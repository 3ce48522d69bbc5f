// internal/commands/root.go
package parabolic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mwiater/parabolic/internal/appconfig"
	"github.com/mwiater/parabolic/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

var (
	boolKeys   = []string{"debug", "showEquation", "noColor"}
	stringKeys = []string{"logFile"}
	intKeys    = []string{"seed", "graphRange"}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parabolic",
	Short: "parabolic: match the parabola to its vertex-form equation",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		usedFile, err := ensureConfigLoaded()
		if err != nil {
			return err
		}

		for _, name := range boolKeys {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatBool(viper.GetBool(name)))
			}
		}
		for _, name := range stringKeys {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		for _, name := range intKeys {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatInt(viper.GetInt64(name), 10))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = usedFile
		if err := appconfig.Validate(cfg); err != nil {
			return err
		}
		currentConfig = &cfg

		if cfg.NoColor {
			color.NoColor = true
		}
		if err := logging.Init(cfg.LogFilePath(), cfg.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		logging.Close()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := appconfig.Default()
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", defaults.Debug, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", defaults.LogFile, "path to the log file")
	rootCmd.PersistentFlags().Int64("seed", defaults.Seed, "random seed for targets (0 = time-based)")
	rootCmd.PersistentFlags().Int("graphRange", defaults.GraphRange, "plot both axes over [-graphRange, graphRange]")
	rootCmd.PersistentFlags().Bool("showEquation", defaults.ShowEquation, "show the helper equation when a round starts")
	rootCmd.PersistentFlags().Bool("noColor", defaults.NoColor, "disable coloured output")

	for _, name := range append(append(append([]string{}, boolKeys...), stringKeys...), intKeys...) {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig points viper at the config file and the PARABOLIC_ environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix(appconfig.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// ensureConfigLoaded loads .env, reads the config and sets safe defaults. It
// returns the config file path, or "" when running on defaults alone.
func ensureConfigLoaded() (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to load .env: %w", err)
	}

	defaults := appconfig.Default()
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("logFile", defaults.LogFile)
	viper.SetDefault("seed", defaults.Seed)
	viper.SetDefault("graphRange", defaults.GraphRange)
	viper.SetDefault("showEquation", defaults.ShowEquation)
	viper.SetDefault("noColor", defaults.NoColor)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return viper.ConfigFileUsed(), nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
