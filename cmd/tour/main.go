package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"planet-tour/internal/assets"
	"planet-tour/internal/config"
	"planet-tour/internal/download"
	"planet-tour/internal/fonts"
	"planet-tour/internal/logger"
	"planet-tour/internal/planets"
	"planet-tour/internal/tour"
)

type flags struct {
	configPath string
	envFile    string
	assets     string
	catalog    string
	windowed   bool
	showFPS    bool
}

func main() {
	root := newRootCmd()
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func saved(cmd *cobra.Command, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "tour",
		Short:        "Scroll through the planets of the solar system",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := f.prefs(cmd)
			if err != nil {
				return err
			}
			log := logger.New(prefs.LogPath)
			app, err := tour.New(prefs, log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			app.Run(ctx)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultPath, "preferences file (JSON)")
	pf.StringVar(&f.envFile, "env-file", ".env", "dotenv file with TOUR_* overrides")
	pf.StringVar(&f.assets, "assets", "", "asset directory (textures, fonts, ui)")
	pf.StringVar(&f.catalog, "catalog", "", "YAML planet catalog replacing the built-in one")
	root.Flags().BoolVar(&f.windowed, "windowed", false, "open a window instead of fullscreen")
	root.Flags().BoolVar(&f.showFPS, "fps", false, "show the FPS overlay")

	root.AddCommand(newFetchEnvCmd(f), newFetchFontCmd(f), newFetchAssetsCmd(f))
	return root
}

// prefs layers preferences: file, then .env and TOUR_* variables, then flags that were set.
func (f *flags) prefs(cmd *cobra.Command) (config.Prefs, error) {
	prefs, err := config.Load(f.configPath)
	if err != nil {
		return prefs, err
	}
	if err := config.LoadEnv(f.envFile); err != nil {
		return prefs, err
	}
	prefs, err = config.ApplyEnv(prefs)
	if err != nil {
		return prefs, err
	}
	prefs, err = config.Overlay(prefs, config.Prefs{AssetDir: f.assets, Catalog: f.catalog})
	if err != nil {
		return prefs, err
	}
	if cmd.Flags().Changed("windowed") {
		prefs.Windowed = f.windowed
	}
	if cmd.Flags().Changed("fps") {
		prefs.ShowFPS = f.showFPS
	}
	return prefs, nil
}

func newFetchEnvCmd(f *flags) *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "fetch-env",
		Short: "Download the environment map into the asset directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := f.prefs(cmd)
			if err != nil {
				return err
			}
			cat := planets.Default()
			if prefs.Catalog != "" {
				if cat, err = planets.Load(prefs.Catalog); err != nil {
					return err
				}
			}
			src := cat.Environment.URL
			if prefs.EnvironmentURL != "" {
				src = prefs.EnvironmentURL
			}
			if url != "" {
				src = url
			}
			if src == "" {
				return fmt.Errorf("fetch-env: no environment URL configured")
			}
			file := cat.Environment.File
			if file == "" || url != "" {
				file = filepath.Join("env", download.FileName(src))
			}
			dest := filepath.Join(prefs.AssetDir, filepath.FromSlash(file))
			path, err := download.New().Fetch(cmd.Context(), src, dest)
			if err != nil {
				return err
			}
			saved(cmd, "Saved to %s", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "environment map URL (default: the catalog's)")
	return cmd
}

func newFetchFontCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-font <family>",
		Short: "Download a Google Fonts family into the asset directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := f.prefs(cmd)
			if err != nil {
				return err
			}
			src, err := fonts.NewRemote().URL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			dir := fonts.BaseDirs(prefs.AssetDir)[0]
			dest := filepath.Join(dir, fonts.FolderNames(args[0])[0], download.FileName(src))
			path, err := download.New().Fetch(cmd.Context(), src, dest)
			if err != nil {
				return err
			}
			saved(cmd, "Saved to %s", path)
			return nil
		},
	}
}

func newFetchAssetsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-assets <zip-url>",
		Short: "Download a texture pack and unpack it into the asset directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := f.prefs(cmd)
			if err != nil {
				return err
			}
			zipPath := filepath.Join(os.TempDir(), download.FileName(args[0]))
			if _, err := download.New().Fetch(cmd.Context(), args[0], zipPath); err != nil {
				return err
			}
			defer os.Remove(zipPath)
			files, err := assets.Unpack(zipPath, prefs.AssetDir)
			if err != nil {
				return err
			}
			saved(cmd, "Unpacked %d files into %s", len(files), prefs.AssetDir)
			return nil
		},
	}
}
