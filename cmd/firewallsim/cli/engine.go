package cli

import (
	"fmt"

	"github.com/afferafatima/Firewall-Simulator/internal/audit"
	"github.com/afferafatima/Firewall-Simulator/internal/blocklist"
	"github.com/afferafatima/Firewall-Simulator/internal/config"
	"github.com/afferafatima/Firewall-Simulator/internal/guard"
	"github.com/afferafatima/Firewall-Simulator/internal/policy"
)

// engine bundles the wired-up core components.
type engine struct {
	cfg       *config.Config
	blocklist *blocklist.Store
	log       *audit.MemoryLog
	guard     *guard.Guard
}

// buildEngine loads configuration and wires the blocklist store, the
// attempt log, the optional Rego policy, and the navigation guard.
func buildEngine() (*engine, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	store := blocklist.NewStore()
	for _, site := range cfg.BlockedSites {
		if err := store.Add(site); err != nil {
			return nil, fmt.Errorf("blocked_sites entry %q: %w", site, err)
		}
	}

	log := audit.NewBoundedLog(cfg.MaxRecords)

	var regoEngine policy.Engine
	if cfg.RegoPolicy != "" {
		regoEngine, err = policy.NewOPAEngine(cfg.RegoPolicy)
		if err != nil {
			return nil, fmt.Errorf("creating policy engine: %w", err)
		}
	}

	g := guard.New(guard.Config{
		Blocklist: store,
		Log:       log,
		Engine:    regoEngine,
		Logger:    logger,
	})

	return &engine{
		cfg:       cfg,
		blocklist: store,
		log:       log,
		guard:     g,
	}, nil
}
