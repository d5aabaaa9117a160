package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cjl525/presetpull/pkg/catalogue"
	pkgerrors "github.com/cjl525/presetpull/pkg/errors"
	"github.com/cjl525/presetpull/pkg/install"
	"github.com/cjl525/presetpull/pkg/observability"
	"github.com/cjl525/presetpull/pkg/preset"
)

// downloadOpts holds the command-line flags for the download command.
// File-config values seed the defaults; flags override them.
type downloadOpts struct {
	output      string        // destination file
	limit       int           // maximum presets to download, 0 for all
	pageSize    int           // entries requested per page
	sleep       time.Duration // delay between page requests
	details     bool          // fetch per-preset detail payloads
	noCache     bool          // disable the detail-payload cache
	install     bool          // copy the written file into the data folder
	installPath string        // explicit install destination directory
	baseURL     string        // API origin override, for mirrors and tests
}

// downloadCommand creates the download command, the tool's main operation.
func (c *CLI) downloadCommand() *cobra.Command {
	opts := downloadOpts{
		output:      c.Config.Output,
		limit:       c.Config.Limit,
		pageSize:    c.Config.PageSize,
		sleep:       c.Config.Sleep.Duration,
		details:     c.Config.Details,
		installPath: c.Config.Install.Path,
	}

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the car-preset catalogue and write the presets file",
		Long: `Download fetches every page of the bakkesplugins.com car-preset
catalogue, normalizes the entries and writes them to a pipe-delimited file.

With --details each preset's detail payload is fetched too, filling in
loadout data the summary listing omits. Detail responses are cached, so
repeated runs only pay for the listing pages.

Examples:
  presetpull download
  presetpull download --limit 20 --details
  presetpull download --details --install`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDownload(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "destination file")
	cmd.Flags().IntVar(&opts.limit, "limit", opts.limit, "maximum presets to download (0 for all)")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", opts.pageSize, "presets to request per page")
	cmd.Flags().DurationVar(&opts.sleep, "sleep", opts.sleep, "delay between page requests")
	cmd.Flags().BoolVar(&opts.details, "details", opts.details, "fetch individual preset details for full loadout data")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the detail-payload cache")
	cmd.Flags().BoolVar(&opts.install, "install", false, "copy the written file into the BakkesMod data folder")
	cmd.Flags().StringVar(&opts.installPath, "install-path", opts.installPath, "explicit install destination directory")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "API origin override")
	_ = cmd.Flags().MarkHidden("base-url")

	return cmd
}

func (c *CLI) runDownload(ctx context.Context, opts downloadOpts) error {
	runID := uuid.NewString()[:8]
	logger := c.Logger.With("run", runID)
	track := newProgress(logger)

	store := c.newStore(ctx)
	if opts.noCache {
		store = nil // NewClient falls back to the null cache
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	client := catalogue.NewClient(catalogue.Config{
		BaseURL:   opts.baseURL,
		PageSize:  opts.pageSize,
		Delay:     normalizeDelay(opts.sleep),
		DetailTTL: c.Config.Cache.TTL.Duration,
	}, nil, store, logger)

	records, err := client.Records(ctx, opts.limit)
	if err != nil {
		return err
	}
	logger.Info("catalogue fetched", "entries", len(records))

	if opts.details {
		spin := newSpinner(ctx, "Fetching preset details...")
		spin.Start()
		for i, rec := range records {
			records[i] = client.Enrich(ctx, rec)
		}
		spin.Stop()
	}

	presets := make([]preset.Preset, 0, len(records))
	for _, rec := range records {
		p, ok := preset.FromRecord(rec)
		if !ok {
			logger.Debug("skipping entry without name or loadout code", "slug", rec.Slug())
			observability.Download().OnRecordDropped(ctx, rec.Slug())
			continue
		}
		presets = append(presets, p)
	}

	if len(presets) == 0 {
		return pkgerrors.New(pkgerrors.ErrCodeEmptyCatalogue,
			"no presets were downloaded; check your connection or API changes")
	}

	if err := preset.WriteFile(opts.output, presets); err != nil {
		return err
	}
	track.done("Downloaded " + plural(len(presets), "preset"))
	observability.Download().OnRunComplete(ctx, len(presets), time.Since(track.start), nil)

	printSuccess("Wrote %d of %d catalogue entries", len(presets), len(records))
	printFile(opts.output)
	if dropped := len(records) - len(presets); dropped > 0 {
		printDetail("%s skipped for missing name or loadout code", plural(dropped, "entry"))
	}

	if opts.install {
		dst, err := install.Install(opts.output, opts.installPath)
		if err != nil {
			return err
		}
		printSuccess("Installed presets file")
		printFile(dst)
	}
	return nil
}

// normalizeDelay maps the "no delay" flag value 0 to the client's explicit
// no-delay sentinel, since the client treats 0 as "use the default".
func normalizeDelay(d time.Duration) time.Duration {
	if d == 0 {
		return -1
	}
	return d
}
