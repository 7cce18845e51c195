// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the product-calculator CLI.
// It prompts for two numbers, prints their product, and exits non-zero
// when either number cannot be parsed.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/product-calculator/internal/console"
	"github.com/pdiddy/product-calculator/internal/driver"
	"github.com/pdiddy/product-calculator/internal/locale"
	"github.com/pdiddy/product-calculator/internal/operand"
	"github.com/pdiddy/product-calculator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes diagnostics to stderr; it is configured in PersistentPreRunE.
var logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

// rootCmd is the base command for the product-calculator CLI.
var rootCmd = &cobra.Command{
	Use:   "product-calculator",
	Short: "Multiply two numbers entered at the prompt",
	Long: `product-calculator asks for two numbers, one per line, and prints
their product as "a × b = result". If either entry is not a number it prints
an error and exits with status 1 without asking again.

Prompts and messages are localized with --lang (built-in: en, zh) or a YAML
catalog given with --catalog.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", viper.GetString("log_level"), err)
		}
		logger.SetLevel(level)
		logger.SetOutput(cmd.ErrOrStderr())
		return nil
	},
	RunE: runCalculate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./product-calculator.yaml or ~/.config/product-calculator/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "stderr log level: debug, info, warn, error")
	rootCmd.Flags().String("lang", locale.DefaultLang, "message language (e.g. en, zh, zh_CN.UTF-8)")
	rootCmd.Flags().String("catalog", "", "YAML message catalog overriding the built-in messages")
	rootCmd.Flags().Bool("color", false, "style the result and error lines on terminals")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("lang", rootCmd.Flags().Lookup("lang"))
	viper.BindPFlag("catalog", rootCmd.Flags().Lookup("catalog"))
	viper.BindPFlag("color", rootCmd.Flags().Lookup("color"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("product-calculator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "product-calculator"))
		}
	}

	viper.SetEnvPrefix("PRODUCT_CALCULATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the run settings from viper.
func loadConfig() types.Config {
	return types.Config{
		Lang:        viper.GetString("lang"),
		CatalogFile: viper.GetString("catalog"),
		Color:       viper.GetBool("color"),
		LogLevel:    viper.GetString("log_level"),
	}
}

func catalogFor(cfg types.Config) (locale.Catalog, error) {
	if cfg.CatalogFile == "" {
		return locale.Lookup(cfg.Lang), nil
	}
	return locale.LoadFile(cfg.CatalogFile, cfg.Lang)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	catalog, err := catalogFor(cfg)
	if err != nil {
		return err
	}

	d := driver.New(cmd.InOrStdin(), console.New(cmd.OutOrStdout(), cfg.Color), catalog,
		driver.WithLogger(logger))
	out, err := d.Run()
	if err != nil {
		return err
	}
	logger.Info("done", "a", out.A, "b", out.B, "product", out.Product)
	return nil
}

// exitCode maps a command error to the process exit status. Invalid input
// has already been reported on stdout; anything else is logged.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, operand.ErrInvalidNumericInput) {
		logger.Error("run failed", "err", err)
	}
	return 1
}

func main() {
	os.Exit(exitCode(rootCmd.Execute()))
}
