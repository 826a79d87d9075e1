package main

import (
	"fmt"
	"log/slog"

	"listpub/internal/artefactstore"
	"listpub/internal/blobstore"
	"listpub/internal/config"
	"listpub/internal/logging"
	"listpub/internal/notifications"
	"listpub/internal/publication"
	"listpub/internal/registry"
	"listpub/internal/render"
)

// commandContext lazily builds the shared collaborators commands need so
// that help and version never touch the filesystem.
type commandContext struct {
	configFlag *string

	cfg    *config.Config
	logger *slog.Logger
	reg    *registry.Registry
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, reg: registry.New()}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

func (c *commandContext) orchestrator() (*render.Orchestrator, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return render.NewOrchestrator(c.reg, render.NewPlainRenderer(), logging.WithComponent(logger, "render")), nil
}

// openService wires the full publication facade. The returned cleanup
// closes the stores.
func (c *commandContext) openService() (*publication.Service, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	orchestrator, err := c.orchestrator()
	if err != nil {
		return nil, nil, err
	}

	store, err := artefactstore.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open artefact store: %w", err)
	}
	blobs, err := blobstore.Open(cfg.Paths.BlobDir)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("open blob store: %w", err)
	}

	service := publication.NewService(
		store,
		blobs,
		orchestrator,
		publication.NewAuthorizer(cfg),
		notifications.NewService(cfg),
		logging.WithComponent(logger, "publication"),
	)
	cleanup := func() {
		_ = blobs.Close()
		_ = store.Close()
	}
	return service, cleanup, nil
}

func (c *commandContext) openStore() (*artefactstore.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return artefactstore.Open(cfg)
}
