// Command hostprobe reports which host application has embedded the current
// process, for pipeline scripts that need to branch per host.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pipefold/hostprobe/internal/config"
	"github.com/pipefold/hostprobe/internal/hostapp"
)

// version is set by the linker at build time.
var version = "dev"

var (
	cfgFile     string
	jsonOut     bool
	verbose     bool
	appOverride string
)

var rootCmd = &cobra.Command{
	Use:   "hostprobe",
	Short: "Detect which host application embeds the current process",
	Long: `hostprobe identifies the host application (Maya, Houdini, Blender, ...)
that embeds or spawned the current process.

Detection tries three strategies in order: an explicit override (--app flag,
HOSTPROBE_APP, or the config file), the executable's basename against known
aliases, and finally each application's environment probe in registry order.`,
	Version:      version,
	RunE:         runDetect,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./hostprobe.yml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false,
		"emit JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&appOverride, "app", "",
		"force detection to the given application id")

	// Flag wins over HOSTPROBE_APP, which wins over the config file.
	_ = viper.BindPFlag("override", rootCmd.PersistentFlags().Lookup("app"))
	_ = viper.BindEnv("override", hostapp.DefaultOverrideKey)

	rootCmd.AddCommand(listCmd, scanCmd, hostVersionCmd, mcpCmd)
}

func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// loadConfig reads the project config from --config or the working directory.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load(".")
}

// buildRegistry loads the config, applies it to the built-in catalog, and
// returns the registry together with the effective override value.
func buildRegistry() (*hostapp.Registry, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}

	reg, err := hostapp.NewRegistry(cfg.Apply(hostapp.DefaultCatalog())...)
	if err != nil {
		return nil, "", err
	}

	override := viper.GetString("override")
	if override == "" {
		override = cfg.Override
	}
	return reg, override, nil
}

// newResolver builds a resolver for the effective override value.
func newResolver(reg *hostapp.Registry, override string) *hostapp.Resolver {
	opts := []hostapp.Option{}
	if override != "" {
		opts = append(opts, hostapp.WithOverride(override))
	}
	return hostapp.NewResolver(reg, opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
