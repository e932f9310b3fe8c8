package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"fjacquet/mt940/cmd/batch"
	"fjacquet/mt940/cmd/convert"
	"fjacquet/mt940/cmd/fields"
	"fjacquet/mt940/cmd/root"
	"fjacquet/mt940/cmd/sanitize"
	"fjacquet/mt940/cmd/validate"
	"fjacquet/mt940/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	config.LoadEnv()

	// 2. Configure the global log level before any logger is used
	configureLogLevelDirectly()

	// 3. Initialize root command and add all subcommands
	root.Init()
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(sanitize.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(fields.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return logLevel
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
