package main

import (
	"fmt"
	"strconv"

	"cmms/cmd/cmms/ui"
	"cmms/internal/assets"
	"cmms/internal/config"
	"cmms/internal/logging"
	"cmms/internal/store"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listSearch   string
	listCategory string
	listFormat   string
)

// loadSnapshot opens the configured repository and reads it once.
func loadSnapshot(cmd *cobra.Command) (*config.Config, store.Snapshot, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, store.Snapshot{}, err
	}
	ctx := commandContext(cmd)

	repo, err := store.Open(ctx, cfg.Data)
	if err != nil {
		return nil, store.Snapshot{}, err
	}
	defer repo.Close()

	snap, err := store.LoadSnapshot(ctx, repo)
	if err != nil {
		return nil, store.Snapshot{}, err
	}
	logging.Get(logging.CategoryCLI).Info("%s: loaded %d assets from %s source", cmd.Name(), len(snap.Records), cfg.Data.Source)
	getLogger().Debug("Snapshot loaded",
		zap.String("source", cfg.Data.Source),
		zap.Int("assets", len(snap.Records)))
	return cfg, snap, nil
}

func runAssetsList(cmd *cobra.Command, args []string) error {
	cfg, snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}

	filters := assets.Filters{SearchQuery: listSearch, Category: listCategory}
	visible := assets.DeriveVisibleAssets(snap.Records, filters)
	logging.Get(logging.CategoryCLI).Debug("assets list: search=%q category=%q visible=%d", listSearch, listCategory, len(visible))
	getLogger().Debug("Assets filtered",
		zap.String("search", listSearch),
		zap.String("category", listCategory),
		zap.Int("visible", len(visible)))

	out := cmd.OutOrStdout()
	switch listFormat {
	case "yaml":
		return store.EncodeSeed(out, visible, nil)
	case "table", "":
		styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
		catalog := assets.BuildCatalog(cfg.Categories.Options, snap.Records, cfg.Categories.Mode)

		title := fmt.Sprintf("Assets (%d of %d) · %s", len(visible), len(snap.Records), assets.LabelFor(catalog, filters.Category))
		table := ui.NewSimpleTable(title, []string{"ID", "Asset Name", "Category", "Status", "Last Maintenance"})
		table.Empty = "No assets match the current filters."
		for _, r := range visible {
			table.AddRow(strconv.Itoa(r.ID), r.Name, r.Category, styles.StatusBadge(r.Status), r.LastMaintenanceText())
		}
		fmt.Fprint(out, table.View(styles))
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: table, yaml)", listFormat)
	}
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, r := range snap.Records {
		counts[r.Category]++
	}

	catalog := assets.BuildCatalog(cfg.Categories.Options, snap.Records, cfg.Categories.Mode)
	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	table := ui.NewSimpleTable(fmt.Sprintf("Categories (%s mode)", cfg.Categories.Mode), []string{"Value", "Label", "Assets"})
	for _, opt := range catalog {
		n := counts[opt.Value]
		if opt.Value == assets.AllCategories {
			n = len(snap.Records)
		}
		table.AddRow(opt.Value, opt.Label, strconv.Itoa(n))
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(styles))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}

	st := snap.Stats
	p := st.PendingByPriority
	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))

	table := ui.NewSimpleTable("Dashboard Statistics", []string{"Metric", "Value", "Trend"})
	table.AddRow("Total Assets", humanize.Comma(int64(st.TotalAssets)), st.Trends.TotalAssets)
	table.AddRow("Pending Work Orders", humanize.Comma(int64(st.PendingWorkOrders)), st.Trends.PendingWorkOrders)
	table.AddRow("  by priority", fmt.Sprintf("%d high / %d medium / %d low", p.High, p.Medium, p.Low), "")
	table.AddRow("Preventive Maintenance", fmt.Sprintf("%d%%", st.PreventiveMaintenance), st.Trends.PreventiveMaintenance)
	for _, s := range assets.Statuses {
		table.AddRow("Health: "+s.Label(), styles.StatusDot(s, fmt.Sprintf("%d%%", st.Health.Percent(s))), "")
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(styles))
	return nil
}
