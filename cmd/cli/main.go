package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/stockdesk/internal/buildinfo"
	"github.com/dmitrijs2005/stockdesk/internal/client/cli"
	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/config"
	"github.com/dmitrijs2005/stockdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/stockdesk/internal/client/router"
	"github.com/dmitrijs2005/stockdesk/internal/client/services"
	"github.com/dmitrijs2005/stockdesk/internal/client/session"
	"github.com/dmitrijs2005/stockdesk/internal/filex"
	"github.com/dmitrijs2005/stockdesk/internal/jwtx"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
	"github.com/dmitrijs2005/stockdesk/internal/validation"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	dsn, err := filex.DataFile(cfg.DataDir, cfg.DatabaseFile)
	if err != nil {
		return err
	}
	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	store := session.New(ctx, session.NewMetadataStorage(metadata.NewSQLiteRepository(db)), jwtx.NewCodec(), logger)

	api := client.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout,
		client.WithTokenProvider(store.Token),
		client.WithLogger(logger),
	)

	r := router.New(store, logger, router.DefaultRoutes()...)
	defer r.FollowSession(store)()

	v := validation.New()

	app := cli.NewApp(cli.Deps{
		Config:    cfg,
		Log:       logger,
		Session:   store,
		Router:    r,
		Auth:      services.NewAuthService(api, store, v, logger, cfg.DefaultRoleID),
		Inventory: services.NewInventoryService(api, store, v, cfg.PageSize),
		Listings:  services.NewListingService(api, store, cfg.PageSize),
		Settings:  services.NewSettingsService(db, v),
	})
	app.Run(ctx)
	return nil
}
