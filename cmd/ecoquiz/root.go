package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/config"
	"github.com/saulo-duarte/ecoquiz-lambda/internal/container"
)

var rootCmd = &cobra.Command{
	Use:          "ecoquiz",
	Short:        "Environmental quiz and chat backend",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		return loadEnvFile(envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to an optional dotenv file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lambdaCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(quizCmd)
}

// loadEnvFile applies a dotenv file without overriding variables already
// set in the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func newContainer(cmd *cobra.Command) (*container.Container, error) {
	return container.New(cmd.Context())
}

// newTerminalContainer is newContainer for interactive commands, whose
// stdout belongs to the user. Logs move to stderr.
func newTerminalContainer(cmd *cobra.Command) (*container.Container, error) {
	c, err := newContainer(cmd)
	if err != nil {
		return nil, err
	}
	config.Logger.SetOutput(cmd.ErrOrStderr())
	return c, nil
}
