// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transcript-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/transcript-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the transcript-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "transcript-engine",
	Short: "Summarize student performance from transcript PDFs",
	Long: `transcript-engine reads a PDF of unofficial transcripts, recovers the
course history of every student in it, and writes a spreadsheet summarizing
performance in the tracked subjects: completed courses, upper-level GPA,
credits, and current enrollments per subject, plus every individual grade.

Built for honor-society candidate selection; the parser targets the LIU
Post unofficial transcript layout.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./transcript-engine.yaml or ~/.config/transcript-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcript-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transcript-engine"))
		}
	}

	viper.SetEnvPrefix("TRANSCRIPT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the run configuration: defaults, overridden by any
// config file / environment values. Flag overrides are applied by the
// subcommands on top of this.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()
	if viper.IsSet("current_term") {
		cfg.CurrentTerm = viper.GetString("current_term")
	}
	if viper.IsSet("subjects") {
		cfg.Subjects = viper.GetStringSlice("subjects")
	}
	if viper.IsSet("ignore_courses") {
		// viper lowercases map keys; subject codes are uppercase.
		cfg.IgnoreCourses = make(map[string][]string)
		for subj, courses := range viper.GetStringMapStringSlice("ignore_courses") {
			cfg.IgnoreCourses[strings.ToUpper(subj)] = courses
		}
	}
	if viper.IsSet("upper_level_min") {
		cfg.UpperLevelMin = viper.GetInt("upper_level_min")
	}
	if viper.IsSet("in_dir") {
		cfg.InDir = viper.GetString("in_dir")
	}
	if viper.IsSet("out_dir") {
		cfg.OutDir = viper.GetString("out_dir")
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
