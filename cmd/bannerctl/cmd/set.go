package cmd

import (
	"errors"
	"fmt"
	"os"

	"memorial-banner/internal/features/banners/adapters"
	"memorial-banner/internal/features/banners/dialog"
	"memorial-banner/internal/features/banners/display"
	"memorial-banner/internal/features/banners/domain"
	"memorial-banner/internal/features/banners/ports"

	"github.com/spf13/cobra"
)

var (
	imagePath string
	color     string
	pageURL   string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Pick a new banner for a memorial",
	Long: `Run the banner selection flow: open the dialog, pick an option, show it
immediately and save it. If the save fails the banner reverts to what was
shown before and the error is reported.

Without --page the banner is rendered in memory, starting from the stored
banner. With --page the edit page is opened in a headless browser and its
banner element is updated in place.

Examples:
  bannerctl set --memorial 42 --color "#112233"
  bannerctl set --memorial 42 --image banners/sea.jpg
  bannerctl set --memorial 42 --image banners/sea.jpg --page http://localhost:3000/memorials/42/edit`,
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&imagePath, "image", "", "image path relative to the static root")
	setCmd.Flags().StringVar(&color, "color", "", "CSS colour")
	setCmd.Flags().StringVar(&pageURL, "page", "", "edit page to drive in a headless browser")
	setCmd.MarkFlagsMutuallyExclusive("image", "color")
	setCmd.MarkFlagsOneRequired("image", "color")
}

type surfaces struct {
	banner  ports.BannerSurface
	dialog  ports.DialogSurface
	pointer ports.PointerEvents
	close   func()
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	option, err := selectedOption()
	if err != nil {
		return err
	}

	jar := newCookieJar()
	token := cfg.CSRFToken
	if token == "" {
		token, err = adapters.NewAPIClient(newHTTPClient(jar, ""), cfg.APIURL, memorialID).CSRFToken(ctx)
		if err != nil {
			return fmt.Errorf("fetching csrf token: %w", err)
		}
	}
	api := adapters.NewAPIClient(newHTTPClient(jar, token), cfg.APIURL, memorialID)

	s, err := openSurfaces(cmd, api)
	if err != nil {
		return err
	}
	defer s.close()

	notifier := adapters.NewWriterNotifier(os.Stderr)
	banner, err := display.New(s.banner, api, notifier, domain.AssetRoot(cfg.StaticURL))
	if err != nil {
		return err
	}
	printStyle("Before", banner.Original())

	picker := dialog.New(s.dialog, banner, s.pointer, adapters.TriggerElementID)
	if err := picker.Attach(); err != nil {
		return err
	}
	defer picker.Dispose()

	if err := picker.OpenFromTrigger(); err != nil {
		return err
	}
	saved := picker.Select(option)
	fmt.Printf("\ndialog %s, saving %s...\n\n", picker.State(), option)

	saveErr := <-saved
	picker.Wait()
	after, err := s.banner.Style()
	if err != nil {
		return err
	}
	printStyle("After", after)

	var pe *domain.PersistenceError
	if errors.As(saveErr, &pe) {
		return fmt.Errorf("banner reverted: %w", saveErr)
	}
	if saveErr != nil {
		return saveErr
	}
	fmt.Println(okStyle.Render("\nBanner saved"))
	return nil
}

func selectedOption() (domain.Option, error) {
	if imagePath != "" {
		return domain.NewOption(domain.KindImage, imagePath)
	}
	return domain.NewOption(domain.KindColor, color)
}

func openSurfaces(cmd *cobra.Command, api *adapters.APIClient) (*surfaces, error) {
	if pageURL != "" {
		page, err := adapters.OpenRodPage(cmd.Context(), pageURL)
		if err != nil {
			return nil, err
		}
		return &surfaces{
			banner:  page.Banner(),
			dialog:  page.Dialog(),
			pointer: page.Pointer(),
			close:   func() { _ = page.Close() },
		}, nil
	}

	settings, err := api.Settings(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("fetching current banner: %w", err)
	}
	current, err := settings.Option()
	if err != nil {
		return nil, fmt.Errorf("stored banner is invalid: %w", err)
	}

	return &surfaces{
		banner:  adapters.NewMemorySurface(domain.AssetRoot(cfg.StaticURL).StyleFor(current)),
		dialog:  adapters.NewMemoryDialog(adapters.DialogElementID),
		pointer: adapters.NewPointerHub(),
		close:   func() {},
	}, nil
}
