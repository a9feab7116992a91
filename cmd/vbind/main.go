package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vbind/internal/config"
	vberrors "github.com/vango-dev/vbind/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬  ┬┌┐ ┬┌┐┌┌┬┐
  └┐┌┘├┴┐││││ ││
   └┘ └─┘┴┘└┘─┴┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "vbind",
		Short: "Typed reactive bindings for HTML attributes and styles",
		Long: `vbind binds reactive values to HTML attributes, inline styles
and text through typed, validated keys.

Commands:
  • serve   run the live preview server
  • render  write a snapshot of the demo page to a file or S3
  • keys    list every registered attribute and style key
  • bench   measure patch fan-out to websocket clients`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to vbind.yaml (default ./vbind.yaml if present)")
	rootCmd.PersistentFlags().Bool("no-color", os.Getenv("NO_COLOR") != "", "Disable colored error output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if off, _ := cmd.Flags().GetBool("no-color"); off {
			vberrors.DisableColors()
		}
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		keysCmd(),
		benchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w. Coded errors get the full report with their
// detail and hint.
func printError(w io.Writer, err error) {
	var e *vberrors.Error
	if errors.As(err, &e) {
		e.Print(w)
		return
	}
	fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", err)
}

// loadConfig reads the --config file, or vbind.yaml from the working
// directory when it exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadOptional(".")
}

// newLogger returns a text logger at the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// printBanner prints the vbind ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
