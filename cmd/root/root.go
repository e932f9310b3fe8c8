// Package root contains the root command for the application
package root

import (
	"sync"

	"fjacquet/mt940/internal/config"
	"fjacquet/mt940/internal/container"
	"fjacquet/mt940/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before any sub-command runs
	AppConfig *config.Config

	// AppContainer holds the dependencies built from AppConfig
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "mt940",
		Short: "A CLI tool to parse, validate and sanitize SWIFT MT940 bank statements.",
		Long: `mt940 is a CLI tool that parses SWIFT MT940 bank statements into a typed model
and serializes them as JSON, YAML or CSV.

Real-world statements often violate the MT940 format. Unless --strict is given, the input is
sanitized first: non-SWIFT characters are transliterated, text between messages is dropped and
overlong free-text fields are truncated.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to mt940!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			c, err := container.NewContainer(cfg)
			if err != nil {
				return err
			}
			AppConfig = cfg
			AppContainer = c
			Log = c.GetLogger()
			return nil
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (directory for batch)")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (directory for batch), stdout when empty")
	})
}

// GetConfig returns the loaded configuration, loading defaults when no command ran yet.
func GetConfig() *config.Config {
	if AppConfig == nil {
		cfg, err := config.InitializeConfig()
		if err != nil {
			Log.WithError(err).Warn("Failed to load configuration, using defaults")
			cfg = config.Default()
		}
		AppConfig = cfg
	}
	return AppConfig
}

// GetContainer returns the dependency container, building it from GetConfig when no command
// ran yet.
func GetContainer() *container.Container {
	if AppContainer == nil {
		c, err := container.NewContainerWithLogger(GetConfig(), Log)
		if err != nil {
			Log.WithError(err).Error("Failed to create container")
			return nil
		}
		AppContainer = c
	}
	return AppContainer
}
