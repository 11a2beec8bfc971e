package app

import (
	"log/slog"

	"github.com/LHMTR/haruto-information/internal/appconf"
	"github.com/LHMTR/haruto-information/internal/catalog"
	"github.com/LHMTR/haruto-information/internal/messages"
)

// Application holds the dependencies shared by the HTTP handlers, the
// middleware and the static site writer.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Catalog  *catalog.Manager
	Messages *messages.Catalog
}

// New wires an Application from a loaded configuration.
func New(config appconf.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	msgs, err := messages.NewCatalog(logger)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:   config,
		Logger:   logger,
		Catalog:  catalog.NewManager(catalog.Config{Source: config.DataSource}, logger),
		Messages: msgs,
	}, nil
}
