package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/blogem/useradmin/config"
)

var (
	appConfig  *config.Config
	logger     = slog.New(slog.NewTextHandler(os.Stderr, nil))
	jsonOutput bool
	envFiles   []string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "useradmin",
	Short: "User administration with a full audit trail.",
	Long: `User administration with a full audit trail.

Every user that is created, updated or deleted is recorded in an append-only
log that can be browsed in the web interface or exported from the command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable or disable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Enable JSON output")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Environment files to load (default .env)")
	rootCmd.PersistentFlags().String("database", "useradmin.db", "Path to the SQLite database")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag(config.KeyDatabasePath, rootCmd.PersistentFlags().Lookup("database"))
}

func initConfig() {
	cfg, err := config.Load(viper.GetViper(), envFiles...)
	if err != nil {
		logFatal(logger, "failed to load config", err)
	}

	appConfig = cfg
}

func initLogger() {
	logLevel := appConfig.SlogLevel()
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	}

	var handler slog.Handler
	if jsonOutput || appConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
			NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
		})
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// logFatal logs an error with optional key-value pairs and exits.
func logFatal(logger *slog.Logger, message string, err error, kvPairs ...any) {
	logArgs := append([]any{slog.String("error", err.Error())}, kvPairs...)
	logger.Error(message, logArgs...)
	os.Exit(1)
}
