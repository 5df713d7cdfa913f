package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"autozar_backend/internal/app"
	"autozar_backend/internal/catalog"
	"autozar_backend/internal/config"
	"autozar_backend/internal/logger"
	"autozar_backend/internal/services"
	"autozar_backend/internal/storage"
	"autozar_backend/internal/validator"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logEnv     string

	rootCmd = &cobra.Command{
		Use:   "listingctl",
		Short: "Inspect and query the listing store from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitWithWriter(logEnv, cmd.ErrOrStderr())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "path to the YAML config")
	rootCmd.PersistentFlags().StringVar(&logEnv, "log-env", "production", "logger profile (development or production)")

	rootCmd.AddCommand(newQueryCmd(), newFacetsCmd(), newAuditCmd(), newTokenCmd())
}

// session is an opened store with the services built on top of it.
type session struct {
	cfg      *config.Config
	store    storage.Store
	services *services.ServiceContainer
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	store, err := storage.NewStore(ctx, app.StorageConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	seed, err := catalog.Load()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &session{
		cfg:      cfg,
		store:    store,
		services: app.NewServiceContainer(cfg, store, seed, validator.New()),
	}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// filterValues turns repeated key=value flags into query parameters.
func filterValues(filters []string) (url.Values, error) {
	values := url.Values{}
	for _, f := range filters {
		key, value, ok := strings.Cut(f, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("filter %q: expected key=value", f)
		}
		values.Add(key, strings.TrimSpace(value))
	}
	return values, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
