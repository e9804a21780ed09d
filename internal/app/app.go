package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/techrepair/internal/config"
	"github.com/you-humble/techrepair/internal/repository/store"
	thttp "github.com/you-humble/techrepair/internal/transport/http/crm/v1"
	"github.com/you-humble/techrepair/internal/transport/http/health"
	trmw "github.com/you-humble/techrepair/internal/transport/http/middleware"
	"github.com/you-humble/techrepair/platform/closer"
	"github.com/you-humble/techrepair/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initStore,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// initStore never fails on data: broken or missing files give empty collections.
func (a *app) initStore(ctx context.Context) error {
	s := a.di.Store(ctx)

	repairsMissing := s.Load(ctx)
	if repairsMissing && config.C().Storage.BootstrapDemo() {
		if err := store.RepairsBootstrap(ctx, s.Repairs, a.di.now()); err != nil {
			logger.Error(ctx, "failed to bootstrap demo repairs", logger.ErrorF(err))
			return err
		}
		logger.Info(ctx, "demo repairs created", logger.Int("total", s.Repairs.Len()))
	}

	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		trmw.Logging(a.di.Metrics(ctx)),
		trmw.CORS,
	)

	thttp.Mount(r, a.di.Services(ctx))

	r.HandleFunc("/health", health.HealthCheck)
	r.Handle("/metrics", a.di.Metrics(ctx).Handler())

	if dir := cfg.Server.StaticDir(); dir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
	}

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	closer.AddNamed("HTTP server", func(ctx context.Context) error {
		return a.server.Shutdown(ctx)
	})

	return nil
}

// run serves until ctx is cancelled or the listener fails; both paths end in gracefulShutdown.
func (a *app) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 techrepair server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		gracefulShutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
