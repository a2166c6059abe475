// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the company-profiler CLI.
package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/company-profiler/internal/logging"
	"github.com/pdiddy/company-profiler/internal/secrets"
	"github.com/pdiddy/company-profiler/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	secretsDir = ".secrets/"
	dotenvFile = ".env"
)

var (
	// loadedSecrets holds API keys loaded from .secrets/ at startup.
	loadedSecrets map[string]string

	// loadedDotenv holds variables parsed from ./.env at startup.
	loadedDotenv map[string]string
)

// rootCmd prompts for a company and a role and prints the profile.
var rootCmd = &cobra.Command{
	Use:   "company-profiler",
	Short: "Profile a company and a job role from web search results",
	Long: `company-profiler asks for a company name and a job role, runs a handful of
SerpAPI Google searches, and prints three sections: a company overview from
the knowledge panel, the latest news headlines, and role requirements
(skills, experience and salary) picked out of result snippets.

The SerpAPI key is read from --api-key, COMPANY_PROFILER_API_KEY, the api_key
config entry, SERPAPI_API_KEY in the environment or in ./.env, or the file
.secrets/serpapi-api-key, in that order.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runProfile,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./company-profiler.yaml or ~/.config/company-profiler/company-profiler.yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error or off")

	f := rootCmd.Flags()
	f.String("company", "", "company name (prompted when omitted)")
	f.String("role", "", "job role (prompted when omitted)")
	f.String("api-key", "", "SerpAPI key")
	f.String("format", "text", "output format: text, json or yaml")
	f.String("engine", types.DefaultEngine, "search engine name")
	f.String("endpoint", types.DefaultEndpoint, "search API endpoint")
	f.String("locale", types.DefaultLocale, "country code sent as gl")
	f.Int("num", types.DefaultNum, "results requested per search")
	f.Duration("timeout", types.DefaultTimeout, "HTTP request timeout")

	bind := map[string]string{
		"log_level": "log-level",
		"api_key":   "api-key",
		"format":    "format",
		"engine":    "engine",
		"endpoint":  "endpoint",
		"locale":    "locale",
		"num":       "num",
		"timeout":   "timeout",
	}
	for key, flag := range bind {
		fl := pf.Lookup(flag)
		if fl == nil {
			fl = f.Lookup(flag)
		}
		if err := viper.BindPFlag(key, fl); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("company-profiler")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "company-profiler"))
		}
	}

	viper.SetEnvPrefix("COMPANY_PROFILER")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// setup installs the logger on the command context and loads secrets.
func setup(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), level)
	cmd.SetContext(log.WithContext(cmd.Context()))

	if used := viper.ConfigFileUsed(); used != "" {
		log.Info().Str("path", used).Msg("using config file")
	}

	s, err := secrets.Load(cmd.Context(), secretsDir)
	if err != nil {
		return err
	}
	loadedSecrets = s

	d, err := secrets.LoadDotenv(dotenvFile)
	if err != nil {
		return err
	}
	loadedDotenv = d

	if len(s) > 0 {
		log.Info().Strs("keys", sortedKeys(s)).Msg("loaded secrets")
	}
	if len(d) > 0 {
		log.Info().Strs("keys", sortedKeys(d)).Msg("loaded dotenv")
	}
	return nil
}

// apiKey resolves the SerpAPI key from the highest-priority source that has one.
func apiKey() string {
	return secrets.First(
		viper.GetString("api_key"),
		os.Getenv(secrets.SerpAPIKeyEnv),
		loadedDotenv[secrets.SerpAPIKeyEnv],
		loadedSecrets[secrets.SerpAPIKeyFile],
	)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
