package cmd

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"

	"memorial-banner/internal/core/config"
	"memorial-banner/internal/core/httpclient"
	"memorial-banner/internal/core/logger"

	"github.com/spf13/cobra"
)

var (
	memorialID string
	configDir  string
	cfg        *config.ClientConfig
)

var rootCmd = &cobra.Command{
	Use:   "bannerctl",
	Short: "Change and inspect memorial banners",
	Long: `bannerctl talks to the memorial banner API.

Configuration is read from a .env file in --config-dir and the environment:
  BANNER_API_URL  base URL of the API (required)
  STATIC_URL      asset root image paths are rooted under (default /static/)
  CSRF_TOKEN      anti-forgery token; fetched from /csrf when empty`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadClient(configDir)
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&memorialID, "memorial", "m", "", "memorial id")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding the .env file")
	_ = rootCmd.MarkPersistentFlagRequired("memorial")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		return err
	}
	return nil
}

// newHTTPClient returns a logging client sharing jar, optionally stamping the anti-forgery header.
func newHTTPClient(jar http.CookieJar, token string) *http.Client {
	headers := http.Header{}
	if token != "" {
		headers.Set("X-CSRFToken", token)
	}
	client := httpclient.NewClientWithHeaders(cfg.Timeout(), headers)
	client.Jar = jar
	return client
}

func newCookieJar() http.CookieJar {
	jar, _ := cookiejar.New(nil)
	return jar
}
