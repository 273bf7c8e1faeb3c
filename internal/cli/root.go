// Package cli wires the edgedraw command tree: serve, detect and version.
package cli

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ironsheep/edgedraw/internal/canny"
	"github.com/ironsheep/edgedraw/internal/config"
)

// BuildInfo is set by ldflags in the entry point.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	build   BuildInfo
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(build BuildInfo) {
	if err := NewRootCommand(build).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the edgedraw command tree.
func NewRootCommand(build BuildInfo) *cobra.Command {
	a := &app{build: build, v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "edgedraw",
		Short: "Canny edge detection for images",
		Long: `edgedraw finds edges in images with the Canny pipeline: gradient,
non-maximum suppression and hysteresis with thresholds derived from the
image itself. It runs as an MCP server (serve) or on single files (detect).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.edgedraw.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("method", "grayscale", "gradient policy: grayscale (0) or color (1, not implemented)")
	flags.String("operator", "sobel", "derivative kernels: sobel or scharr")
	flags.Float64("blur", 0, "Gaussian pre-blur radius in pixels, 0 disables")
	flags.Int("workers", 0, "concurrent row bands, 0 uses all CPUs")

	a.bind(config.KeyLogLevel, flags.Lookup("log-level"))
	a.bind(config.KeyMethod, flags.Lookup("method"))
	a.bind(config.KeyOperator, flags.Lookup("operator"))
	a.bind(config.KeyBlurRadius, flags.Lookup("blur"))
	a.bind(config.KeyWorkers, flags.Lookup("workers"))

	rootCmd.AddCommand(
		newServeCommand(a),
		newDetectCommand(a),
		newVersionCommand(a),
	)
	return rootCmd
}

func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		// Only fails for a nil flag, which is a wiring bug.
		panic(err)
	}
}

// loadConfig resolves the configuration and sets up logging.
func (a *app) loadConfig(stderr io.Writer) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// stdout carries the MCP protocol and detect summaries
	log.SetOutput(stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if cfg.Debug() {
		canny.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		if cfg.File != "" {
			log.Printf("Using config file: %s", cfg.File)
		}
	} else {
		canny.SetLogger(nil)
	}
	return nil
}
