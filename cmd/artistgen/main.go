package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/musicgenres/internal/build"
	"github.com/handiism/musicgenres/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Flags
	configPath  string
	dataFile    string
	catalogFile string
	outputDir   string
	libraryPath string
	htmlMode    string
	verbose     bool
	dryRun      bool

	logger *zap.Logger

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#95E1A3"))
)

var rootCmd = &cobra.Command{
	Use:   "artistgen",
	Short: "Generate the MusicGenres artist pages",
	Long: `artistgen writes one HTML page per artist of the genre catalog.

Hand-written details come from the overrides data file (data/artists.json);
anything missing there falls back to placeholder content. Every run
regenerates every page.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "settings file (JSON or YAML)")
	flags.StringVar(&dataFile, "data", "", "overrides data file (default data/artists.json)")
	flags.StringVar(&catalogFile, "catalog", "", "catalog file replacing the built-in genres")
	flags.StringVarP(&outputDir, "output", "o", "", "output directory (default artist)")
	flags.StringVar(&libraryPath, "library", "", "MP3 library to read album timelines from")
	flags.StringVar(&htmlMode, "html", "", "interpolation mode: raw, escape or sanitize")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every page")
	flags.BoolVar(&dryRun, "dry-run", false, "render pages without writing them")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	cat, err := build.LoadCatalog(settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var notice string
	builder := build.NewBuilder(settings, cat, func(event build.ProgressEvent) {
		fields := []zap.Field{}
		if event.Slug != "" {
			fields = append(fields, zap.String("slug", event.Slug))
		}
		switch event.Level {
		case build.LevelVerbose:
			logger.Debug(event.Message, fields...)
		case build.LevelWarning:
			logger.Warn(event.Message, fields...)
		case build.LevelError:
			logger.Error(event.Message, fields...)
		case build.LevelSuccess:
			notice = event.Message
		default:
			logger.Info(event.Message, fields...)
		}
	})
	builder.SetDryRun(dryRun)

	logger.Debug("Starting generation",
		zap.String("data", settings.DataFile),
		zap.String("output", settings.OutputDir),
		zap.String("html", settings.Mode().String()),
		zap.Int("artists", cat.Len()))

	if err := builder.Initialize(ctx); err != nil {
		return err
	}

	if _, err := builder.Run(ctx); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("✅ " + notice))
	return nil
}

// loadSettings reads the settings file and applies the flags that were set.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		settings.DataFile = dataFile
	}
	if flags.Changed("catalog") {
		settings.CatalogFile = catalogFile
	}
	if flags.Changed("output") {
		settings.OutputDir = outputDir
	}
	if flags.Changed("library") {
		settings.LibraryPath = libraryPath
	}
	if flags.Changed("html") {
		settings.HTMLMode = htmlMode
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
