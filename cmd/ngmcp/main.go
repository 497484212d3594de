// Package main is the entry point for the ngmcp command.
//
// The command tree:
//
//	ngmcp serve              start the MCP server over stdio
//	ngmcp preview [section]  render a guideline section to the terminal
//	ngmcp validate <file>    run the validation rules over a file
//
// serve is what MCP hosts spawn; the other two exist for working with the
// guidelines directly from a shell.
package main

import (
	"fmt"
	"os"

	"ngmcp/internal/cli"
	"ngmcp/internal/config"
	"ngmcp/internal/content"
	"ngmcp/internal/logging"
	"ngmcp/internal/rules"
	"ngmcp/internal/server"

	"github.com/spf13/cobra"
)

func main() {
	logger := logging.NewAppLogger()

	root := &cobra.Command{
		Use:   "ngmcp",
		Short: "Angular development guidance over the Model Context Protocol",
		Long: "ngmcp serves Angular development guidelines, code examples and a\n" +
			"rule-based code validator to MCP hosts, and exposes the same\n" +
			"content on the command line.",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(logger))
	root.AddCommand(previewCmd(logger))
	root.AddCommand(validateCmd(logger))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the optional config file and applies its log level.
func loadConfig(logger *logging.AppLogger) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		logger.SetLevel(cfg.LogLevel)
	}
	return cfg, nil
}

func serveCmd(logger *logging.AppLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(logger)
			if err != nil {
				logger.Error("Error loading config", "error", err)
				return err
			}

			srv := server.NewServer(cfg, logger)
			if err := srv.Start(); err != nil {
				logger.Error("Server exited with error", "error", err)
				return err
			}
			return nil
		},
	}
}

func previewCmd(logger *logging.AppLogger) *cobra.Command {
	return &cobra.Command{
		Use:       "preview [section]",
		Short:     "Render a guideline section to the terminal",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: content.SectionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}

			store, err := buildStore(cfg)
			if err != nil {
				return err
			}

			section := "all"
			if len(args) == 1 {
				section = args[0]
			}

			text := content.ExtractSection(store.Guidelines(), section)
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderMarkdown(text))
			return nil
		},
	}
}

func validateCmd(logger *logging.AppLogger) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Run the validation rules over a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && !rules.ValidCategory(category) {
				return fmt.Errorf("invalid --type %q (expected component, service or general)", category)
			}
			if category == "" {
				category = string(rules.CategoryGeneral)
			}

			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			engine := rules.NewEngine()
			findings := engine.Validate(string(code), rules.Category(category))

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderFindings(findings))

			for _, f := range findings {
				if f.Severity == rules.SeverityBlocking {
					return fmt.Errorf("blocking issues found")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "type", "t", "", "kind of code being validated (component, service, general)")
	return cmd
}

// buildStore mirrors the server's store construction for the CLI commands.
func buildStore(cfg *config.Config) (*content.Store, error) {
	if cfg != nil && cfg.GuidelinesFile != "" {
		return content.NewStoreFromFile(cfg.GuidelinesFile)
	}
	return content.NewStore()
}
