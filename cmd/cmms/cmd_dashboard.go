package main

import (
	"context"
	"fmt"

	"cmms/cmd/cmms/dashboard"
	"cmms/internal/assets"
	"cmms/internal/logging"
	"cmms/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// runDashboard opens the interactive dashboard. When data.watch is set, a
// watcher goroutine reloads the seed file and pushes snapshots into the
// program; both stop when the program exits.
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	defer logging.CloseAll()

	sessionID := uuid.NewString()
	logging.Boot("session %s: source=%s path=%q watch=%t", sessionID, cfg.Data.Source, cfg.Data.Path, cfg.Data.Watch)

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	repo, err := store.Open(ctx, cfg.Data)
	if err != nil {
		return err
	}
	defer repo.Close()

	// A failed first load is shown inside the dashboard rather than aborting.
	snap, loadErr := store.LoadSnapshot(ctx, repo)
	if loadErr != nil {
		logging.Get(logging.CategoryBoot).Error("initial load failed: %v", loadErr)
	}

	model := dashboard.New(dashboard.Options{
		Snapshot:   snap,
		LoadErr:    loadErr,
		Categories: cfg.Categories,
		UI:         cfg.UI,
		Source:     cfg.Data.Source,
		SessionID:  sessionID,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Data.Watch {
		w, err := store.NewWatcher(cfg.Data.Path, cfg.GetDebounce())
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := w.Start(gctx); err != nil {
			w.Stop()
			return err
		}
		g.Go(func() error {
			defer w.Stop()
			forwardReloads(gctx, w.Changes(), repo, func(msg tea.Msg) { p.Send(msg) })
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	return g.Wait()
}

// forwardReloads reads a fresh snapshot for every change notification and
// hands it to send, until ctx is done.
func forwardReloads(ctx context.Context, changes <-chan struct{}, repo assets.AssetRepository, send func(tea.Msg)) {
	log := logging.Get(logging.CategoryWatcher)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			snap, err := store.LoadSnapshot(ctx, repo)
			if err != nil {
				log.Warn("reload failed: %v", err)
			} else {
				log.Info("reloaded %d assets", len(snap.Records))
			}
			send(dashboard.SnapshotMsg{Snapshot: snap, Err: err})
		}
	}
}
