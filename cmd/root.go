package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Acizza/anup/config"
	"github.com/Acizza/anup/pkg/logger"
	"github.com/Acizza/anup/pkg/manager"
	"github.com/Acizza/anup/pkg/remote"
	"github.com/Acizza/anup/pkg/series"
	"github.com/Acizza/anup/pkg/storage/sqlite"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "anup",
	Short: "track watch progress of episodic series",
	Long:  `track watch progress of episodic series`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath(), "config file")
	rootCmd.PersistentFlags().Bool("offline", false, "don't talk to the remote service")
}

func initConfig() {
	// a missing config file is fine, everything has a default
	if _, err := os.Stat(cfgFile); err == nil {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("ANUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	home, _ := os.UserHomeDir()

	viper.SetDefault("seriesDir", filepath.Join(home, "videos"))

	viper.SetDefault("player.command", "mpv")
	viper.SetDefault("player.args", []string{})

	viper.SetDefault("remote.service", "anilist")
	viper.SetDefault("remote.token", "")
	viper.SetDefault("remote.url", "")

	viper.SetDefault("storage.filePath", filepath.Join(dataDir(), "anup.sqlite"))

	viper.SetDefault("tracking.droppedResume", string(series.ResumeNextEpisode))
	viper.SetDefault("tracking.resetDatesOnRewatch", false)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "anup", "config.yaml")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "anup")
}

// setup wires config, storage and the remote service into a manager. The
// returned func closes the storage handle, releasing the process lock.
func setup(cmd *cobra.Command) (*manager.Manager, func(), error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.FilePath), 0o755); err != nil {
		return nil, nil, err
	}

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return nil, nil, err
	}

	svc := remoteService(cmd, cfg)

	m := manager.New(store, svc, manager.Options{
		SeriesDir:           cfg.SeriesDir,
		Player:              cfg.Player.Command,
		PlayerArgs:          cfg.Player.Args,
		ResumePolicy:        series.ResumePolicy(cfg.Tracking.DroppedResume),
		ResetDatesOnRewatch: cfg.Tracking.ResetDatesOnRewatch,
	})

	return m, func() { _ = store.Close() }, nil
}

func remoteService(cmd *cobra.Command, cfg config.Config) remote.Service {
	offline, _ := cmd.Flags().GetBool("offline")
	if offline || cfg.Remote.Service == "offline" {
		return remote.NewOffline()
	}

	var opts []remote.AniListOption
	if cfg.Remote.URL != "" {
		opts = append(opts, remote.WithURL(cfg.Remote.URL))
	}
	return remote.NewAniList(cfg.Remote.Token, opts...)
}

// cmdContext carries the logger for everything downstream.
func cmdContext() context.Context {
	return logger.WithCtx(context.Background(), logger.Get())
}
