package cli

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/amirphiladam2/Actionable-sub001/internal/config"
	"github.com/amirphiladam2/Actionable-sub001/internal/logging"
	"github.com/amirphiladam2/Actionable-sub001/internal/storage"
	"github.com/amirphiladam2/Actionable-sub001/internal/tasks"
)

// app bundles the collaborators a command needs
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	engine *tasks.Engine
	store  *storage.Store
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	paths := []string{config.GlobalConfigPath(), config.ProjectConfigPath()}
	if opts.configPath != "" {
		paths = append(paths, opts.configPath)
	}
	cfg, err := config.LoadFrom(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// openApp loads config, sets up logging and opens the store
func openApp(opts *rootOptions) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	engine, err := newEngine(cfg.Tasks)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.Storage.DBPath, logger.Named("storage"), storage.WithLocation(engine.Location))
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, engine: engine, store: store}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// newEngine builds the task engine from the configured zone and locale
func newEngine(c config.TasksConfig) (*tasks.Engine, error) {
	loc := time.Local
	if tz := strings.TrimSpace(c.Timezone); tz != "" && !strings.EqualFold(tz, "local") {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid tasks.timezone %q: %w", tz, err)
		}
		loc = l
	}

	tag := language.English
	if c.Locale != "" {
		t, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid tasks.locale %q: %w", c.Locale, err)
		}
		tag = t
	}

	return &tasks.Engine{Location: loc, Locale: tag}, nil
}
