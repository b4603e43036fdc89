package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	gconfig "github.com/goliatone/go-config/config"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-print"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/clc-tz/legalbridge-backend/config"
	"github.com/clc-tz/legalbridge-backend/content"
	"github.com/clc-tz/legalbridge-backend/httpapi"
	"github.com/clc-tz/legalbridge-backend/store"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Info),
		glog.WithName("legalbridge"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg := gconfig.New(&config.AppConfig{}).
		WithLogger(lgr.GetLogger("config"))

	ctx := context.Background()
	if err := cfg.Load(ctx); err != nil {
		panic(err)
	}

	app := cfg.Raw()

	if app.Environment == "development" {
		fmt.Println(print.MaybeHighlightJSON(app))
	}

	db, err := store.Open(app.GetPersistence())
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := store.NewMigrator(db, lgr.GetLogger("store")).Migrate(ctx); err != nil {
		panic(err)
	}

	if err := store.NewSeeder(db, app.GetSeed(), lgr.GetLogger("seed")).Seed(ctx); err != nil {
		panic(err)
	}

	repo := auth.NewRepositoryManager(db)
	repo.MustValidate()

	provider := auth.NewUserProvider(repo.Users()).
		WithLogger(lgr.GetLogger("auth:prv"))

	service := auth.NewTokenService(app.GetAuth(), lgr.GetLogger("auth:jwt"))

	issuer := auth.NewTokenIssuer(service, repo.Tokens(), repo).
		WithLogger(lgr.GetLogger("auth:issue"))

	verifier := auth.NewTokenVerifier(service, repo.Tokens()).
		WithLogger(lgr.GetLogger("auth:verify"))

	auther := auth.NewAuthenticator(provider, issuer, verifier, repo.Tokens()).
		WithLogger(lgr.GetLogger("auth"))

	manager := content.NewManager(db)
	web := content.NewWebAggregator(manager, repo.Users())

	srv := httpapi.NewServer(
		app.GetServer(),
		app.GetAuth(),
		auther,
		repo,
		manager,
		web,
	).WithLogger(lgr.GetLogger("http"))

	go func() {
		if err := srv.Listen(); err != nil {
			lgr.GetLogger("http").Error("server stopped", "error", err)
		}
	}()

	waitExitSignal()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lgr.GetLogger("http").Error("shutdown error", "error", err)
	}
}

func waitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
