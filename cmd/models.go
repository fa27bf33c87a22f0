package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quizbee/adjudicator/internal/semantic"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage the local embedding model",
}

func localEmbedderFlags(cmd *cobra.Command) semantic.LocalConfig {
	cfg := semantic.DefaultLocalConfig()
	if url, _ := cmd.Flags().GetString("url"); url != "" {
		cfg.URL = url
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Model = model
	}
	return cfg
}

var modelsLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the embedding model into the local runtime",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := localEmbedderFlags(cmd)
		e := semantic.NewLocalEmbedder(cfg, slog.Default())
		if err := e.Load(cmd.Context()); err != nil {
			return fmt.Errorf("load %s: %w", cfg.Model, err)
		}
		color.Green("%s loaded", cfg.Model)
		return nil
	},
}

var modelsUnloadCmd = &cobra.Command{
	Use:   "unload",
	Short: "Evict the embedding model from the local runtime",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := localEmbedderFlags(cmd)
		e := semantic.NewLocalEmbedder(cfg, slog.Default())
		if err := e.Unload(cmd.Context()); err != nil {
			return fmt.Errorf("unload %s: %w", cfg.Model, err)
		}
		color.Green("%s unloaded", cfg.Model)
		return nil
	},
}

var modelsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the local runtime with a test embedding",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := localEmbedderFlags(cmd)
		e := semantic.NewLocalEmbedder(cfg, slog.Default())
		if err := e.Load(cmd.Context()); err != nil {
			color.Red("unavailable: %v", err)
			return nil
		}
		vec, err := e.Embed(cmd.Context(), "status probe")
		if err != nil {
			color.Red("unavailable: %v", err)
			return nil
		}
		color.Green("ready")
		fmt.Printf("model       %s\n", e.ModelID())
		fmt.Printf("dimensions  %d\n", len(vec))
		return nil
	},
}

func init() {
	modelsCmd.PersistentFlags().String("url", "", "Embedding runtime endpoint (default "+semantic.DefaultLocalConfig().URL+")")
	modelsCmd.PersistentFlags().String("model", "", "Embedding model name (default "+semantic.DefaultLocalConfig().Model+")")

	modelsCmd.AddCommand(modelsLoadCmd)
	modelsCmd.AddCommand(modelsUnloadCmd)
	modelsCmd.AddCommand(modelsStatusCmd)
}
