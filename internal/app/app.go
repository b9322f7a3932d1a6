package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/deafcat/adaptation/internal/config"
	"github.com/deafcat/adaptation/internal/logging"
	"github.com/deafcat/adaptation/internal/prefs"
	"github.com/deafcat/adaptation/internal/supabase"
	"github.com/deafcat/adaptation/internal/ui"
)

// Options configure the DeafCat application.
type Options struct {
	ConfigPath string // empty uses ~/.config/deafcat/config.toml
	PrefsPath  string // empty uses ~/.config/deafcat/prefs.toml
	LogPath    string // empty logs to stderr; Run defaults it to a file
	Debug      bool
	Tab        ui.Tab
	Version    string
}

// Env holds the pieces every entry point needs.
type Env struct {
	Config config.Config
	Logger *zap.Logger
	Client *supabase.Client
}

// Bootstrap loads config, builds the logger and the data client. Config
// warnings are logged, not returned.
func Bootstrap(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(opts.LogPath, opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	clientOpts := []supabase.Option{supabase.WithTimeout(cfg.RequestTimeout)}
	if opts.Version != "" {
		clientOpts = append(clientOpts, supabase.WithUserAgent("deafcat/"+opts.Version))
	}
	client, err := supabase.NewClient(cfg.URL, cfg.AnonKey, clientOpts...)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init supabase client: %w", err)
	}

	return &Env{Config: cfg, Logger: logger, Client: client}, nil
}

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.LogPath == "" {
		opts.LogPath = logging.DefaultPath()
	}
	env, err := Bootstrap(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Logger.Sync() }()

	userPrefs := prefs.Load(opts.PrefsPath)
	env.Logger.Info("starting dashboard",
		zap.String("url", env.Client.BaseURL()),
		zap.Bool("configured", env.Config.Configured()),
		zap.Stringer("tab", opts.Tab),
		zap.String("theme", userPrefs.Theme))

	err = ui.Run(ui.Options{
		Context:      ctx,
		Client:       env.Client,
		Logger:       env.Logger,
		InitialTab:   opts.Tab,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
		Unconfigured: !env.Config.Configured(),
	})
	if err != nil {
		env.Logger.Error("dashboard exited", zap.Error(err))
		return err
	}
	env.Logger.Info("dashboard closed")
	return nil
}
