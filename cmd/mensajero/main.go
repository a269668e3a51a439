package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studiowebux/mensajero/internal/cli"
	"github.com/studiowebux/mensajero/internal/config"
	"github.com/studiowebux/mensajero/internal/executor"
	"github.com/studiowebux/mensajero/internal/logger"
	"github.com/studiowebux/mensajero/internal/tui"
	"github.com/studiowebux/mensajero/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mensajero",
	Short: "Mensajero - minimal interactive REST client",
	Long: `Mensajero is a minimal REST client with an interactive TUI.

Run without arguments to start the TUI. Use 'send' to fire a single request
from scripts.

Examples:
  mensajero                                   # Start interactive TUI
  mensajero send http://localhost:8080/ping   # GET and print the body
  mensajero send -X POST -d '{"a":1}' URL     # POST a JSON body
  mensajero send URL -q page=2 -H 'X-Id: 1'   # Add params and headers
  mensajero send URL --filter 'items[0]'      # Filter with JMESPath`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(func(cfg *config.Config, log *zap.SugaredLogger) error {
			return tui.Run(cfg, log)
		})
	},
}

var sendCmd = &cobra.Command{
	Use:   "send <url>",
	Short: "Send one request and print the response",
	Long: `Send one request without the TUI.

The exit code is non-zero when the request fails or the server answers
with a 4xx or 5xx status.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(func(cfg *config.Config, log *zap.SugaredLogger) error {
			opts := cli.SendOptions{
				Method:       flagMethod,
				URL:          args[0],
				Query:        flagQuery,
				Headers:      flagHeaders,
				Body:         flagBody,
				BodyFile:     flagBodyFile,
				Token:        flagToken,
				OutputFormat: flagOutput,
				Filter:       flagFilter,
				ShowFull:     flagFull,
				Stdin:        cmd.InOrStdin(),
				Stdout:       cmd.OutOrStdout(),
			}
			return cli.Send(opts, cfg, executor.New(executor.WithLogger(log)))
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, optionally checking for a newer release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mensajero %s\n", version.Version)
		if !flagCheck {
			return nil
		}

		return withRuntime(func(cfg *config.Config, log *zap.SugaredLogger) error {
			update, err := version.CheckForUpdate(executor.New(executor.WithLogger(log)), version.ReleasesURL, version.Version)
			if err != nil {
				return err
			}
			if update.Available {
				fmt.Fprintf(out, "A newer version is available: %s\n%s\n", update.Latest, update.URL)
			} else {
				fmt.Fprintln(out, "You are running the latest version")
			}
			return nil
		})
	},
}

// Flags for send
var (
	flagMethod   string
	flagQuery    []string
	flagHeaders  []string
	flagBody     string
	flagBodyFile string
	flagToken    string
	flagOutput   string
	flagFilter   string
	flagFull     bool
)

// Flags for version
var flagCheck bool

func init() {
	sendCmd.Flags().StringVarP(&flagMethod, "request", "X", "GET", "HTTP method (GET/POST/PUT/DELETE)")
	sendCmd.Flags().StringArrayVarP(&flagQuery, "query", "q", []string{}, "Query parameter (key=value or key), can be repeated")
	sendCmd.Flags().StringArrayVarP(&flagHeaders, "header", "H", []string{}, "Header (Name: value), can be repeated")
	sendCmd.Flags().StringVarP(&flagBody, "data", "d", "", "Request body, '-' reads stdin")
	sendCmd.Flags().StringVar(&flagBodyFile, "body-file", "", "Read the request body from a file (.json/.jsonc comments are stripped)")
	sendCmd.Flags().StringVarP(&flagToken, "token", "t", "", "Bearer token")
	sendCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format (text/json/yaml/body)")
	sendCmd.Flags().StringVar(&flagFilter, "filter", "", "JMESPath expression applied to a JSON body")
	sendCmd.Flags().BoolVarP(&flagFull, "full", "f", false, "Show full output (status, headers, body)")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "Check for a newer release")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(versionCmd)
}

// withRuntime loads configuration and the logger around fn
func withRuntime(fn func(cfg *config.Config, log *zap.SugaredLogger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	return fn(cfg, log)
}
