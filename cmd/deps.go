package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shadowmaster/internal/advisor"
	"github.com/abhisek/shadowmaster/internal/config"
	"github.com/abhisek/shadowmaster/internal/content"
	"github.com/abhisek/shadowmaster/internal/llm"
	"github.com/abhisek/shadowmaster/internal/logging"
	"github.com/abhisek/shadowmaster/internal/store"
)

// deps is everything a command needs after startup.
type deps struct {
	cfg     config.Config
	log     *logging.Logger
	store   *store.Store
	catalog *content.Catalog
	advisor *advisor.Service

	// providerErr explains why the advisor is offline, if it is.
	providerErr error
}

func (d *deps) Close() {
	if d.store != nil {
		d.store.Close()
	}
	d.log.Sync()
}

// loadDeps opens the logger, request log, catalog and advisory provider. A
// missing provider is not an error: the advisor runs offline.
func loadDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	d := &deps{cfg: cfg, log: log}

	d.catalog, err = loadCatalog(cfg)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.store, err = store.Open(cfg.DBPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), d.store.Requests(), log)
	if err != nil {
		d.providerErr = err
		if !errors.Is(err, llm.ErrNotConfigured) {
			log.Warn("llm provider init failed", "error", err)
		}
		provider = nil
	}
	d.advisor = advisor.New(provider, cfg.AdvisorTimeout, log)

	log.Info("startup",
		"db", cfg.DBPath,
		"catalog", cfg.CatalogPath,
		"advisor_online", d.advisor.Available(),
	)
	return d, nil
}

func loadCatalog(cfg config.Config) (*content.Catalog, error) {
	if cfg.CatalogPath == "" {
		return content.Default(), nil
	}
	c, err := content.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}
