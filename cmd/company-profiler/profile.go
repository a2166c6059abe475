package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/company-profiler/internal/profile"
	"github.com/pdiddy/company-profiler/internal/search"
	"github.com/pdiddy/company-profiler/pkg/types"
)

func runProfile(cmd *cobra.Command, args []string) error {
	format, err := profile.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	cfg := searchConfig()
	client, err := search.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg)
	if err != nil {
		return err
	}

	company, _ := cmd.Flags().GetString("company")
	role, _ := cmd.Flags().GetString("role")

	// Keep stdout clean for machine-readable output.
	promptOut := cmd.OutOrStdout()
	if format != profile.FormatText {
		promptOut = cmd.ErrOrStderr()
	}
	company, role, err = readInputs(cmd.InOrStdin(), promptOut, company, role)
	if err != nil {
		return err
	}

	p, err := profile.New(client).Build(cmd.Context(), company, role)
	if err != nil {
		return err
	}
	return profile.Write(cmd.OutOrStdout(), p, format)
}

// searchConfig assembles the search settings from flags, environment and
// config file.
func searchConfig() types.SearchConfig {
	cfg := types.DefaultSearchConfig()
	cfg.APIKey = apiKey()
	if v := viper.GetString("engine"); v != "" {
		cfg.Engine = v
	}
	if v := viper.GetString("endpoint"); v != "" {
		cfg.Endpoint = v
	}
	cfg.Locale = viper.GetString("locale")
	if v := viper.GetInt("num"); v != 0 {
		cfg.Num = v
	}
	if v := viper.GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	cfg.UserAgent = types.DefaultUserAgent + " (" + version + ")"
	return cfg
}
