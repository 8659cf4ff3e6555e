package cmd

import (
	"fmt"

	"memorial-banner/internal/features/banners/adapters"
	"memorial-banner/internal/features/banners/domain"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored banner of a memorial",
	Long: `Fetch the banner stored for a memorial and print how it renders.

Examples:
  bannerctl show --memorial 42`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	api := adapters.NewAPIClient(newHTTPClient(nil, ""), cfg.APIURL, memorialID)

	settings, err := api.Settings(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching banner: %w", err)
	}

	opt, err := settings.Option()
	if err != nil {
		return fmt.Errorf("stored banner is invalid: %w", err)
	}

	fmt.Println(titleStyle.Render("Memorial " + memorialID))
	printKV("banner_type", string(settings.Kind))
	printKV("banner_value", settings.Value)
	if !settings.UpdatedAt.IsZero() {
		printKV("updated_at", settings.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Println()
	printStyle("Rendered", domain.AssetRoot(cfg.StaticURL).StyleFor(opt))
	return nil
}
