package userapi

import "github.com/krainet/userctl/pkg/libol"

// New wires the service over store, creates the configured admin and
// returns the HTTP front.
func New(cfg *Config, store Store, notifier Notifier) (*Http, error) {
	if err := cfg.Correct(); err != nil {
		return nil, err
	}
	service := NewService(store, NewTokens(cfg.Secret, cfg.TokenTTL), notifier)
	if err := service.Bootstrap(cfg.Admin); err != nil {
		return nil, libol.NewErr("bootstrap admin: %s", err)
	}
	return NewHttp(service, cfg.Listen), nil
}

// OpenStore picks Postgres when a database url is configured and the
// in-memory store otherwise. The returned func releases it.
func OpenStore(cfg *Config) (Store, func(), error) {
	if cfg.DatabaseUrl == "" {
		libol.Info("OpenStore: memory")
		return NewMemoryStore(), func() {}, nil
	}
	db, err := OpenPostgres(cfg.DatabaseUrl)
	if err != nil {
		return nil, nil, err
	}
	store, err := NewPostgresStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	libol.Info("OpenStore: postgres")
	return store, func() { _ = db.Close() }, nil
}
