package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"mini_web/internal/banner"
	"mini_web/internal/config"
	"mini_web/internal/health"
	"mini_web/internal/router"
	"mini_web/internal/transport"
	"mini_web/internal/version"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Bootstrap struct {
	Config     config.Config
	Router     *router.Router
	Logger     *zap.Logger
	Output     io.Writer
	SignalChan chan os.Signal
}

func New(conf config.Config, r *router.Router, logger *zap.Logger) *Bootstrap {
	return &Bootstrap{
		Config:     conf,
		Router:     r,
		Logger:     logger,
		Output:     os.Stdout,
		SignalChan: make(chan os.Signal, 1),
	}
}

type service struct {
	name      string
	transport transport.Transport
	listener  net.Listener
}

// listen binds every enabled service. Listeners already bound are closed when
// a later one fails.
func (b *Bootstrap) listen() ([]service, *health.Server, error) {
	var services []service
	closeAll := func() {
		for _, s := range services {
			_ = s.listener.Close()
		}
	}

	httpServer := transport.NewHTTPServer(b.Config, b.Router, b.Logger)
	ln, err := httpServer.Listen()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start http server: %w", err)
	}
	services = append(services, service{name: "http", transport: httpServer, listener: ln})

	if !b.Config.HealthEnabled() {
		return services, nil, nil
	}

	healthServer := health.New(b.Config.HealthAddr(), b.Logger)
	hln, err := healthServer.Listen()
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("failed to start health server: %w", err)
	}
	services = append(services, service{name: "health", transport: healthServer, listener: hln})

	return services, healthServer, nil
}

func (b *Bootstrap) printBanner(services []service) {
	info := banner.Info{
		Version: version.Short(),
		Routes:  b.Router.Len(),
	}
	for _, s := range services {
		switch s.name {
		case "http":
			info.Addr = s.listener.Addr().String()
		case "health":
			info.HealthAddr = s.listener.Addr().String()
		}
	}
	if err := banner.Print(b.Output, info); err != nil {
		b.Logger.Warn("Failed to print banner", zap.Error(err))
	}
}

// Run binds the listeners, serves until SIGINT/SIGTERM or the first fatal
// service error, then closes everything. A signal returns nil.
func (b *Bootstrap) Run() error {
	services, healthServer, err := b.listen()
	if err != nil {
		return err
	}

	if b.Config.BannerEnabled() {
		b.printBanner(services)
	}

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	g, ctx := errgroup.WithContext(context.Background())
	for _, s := range services {
		s := s
		g.Go(func() error {
			if err := s.transport.Serve(s.listener); err != nil {
				return fmt.Errorf("error when serving %s server: %w", s.name, err)
			}
			return nil
		})
	}

	if healthServer != nil {
		healthServer.SetServing(true)
	}

	b.Logger.Info("All services started successfully", zap.String("version", version.Get().String()))

	select {
	case <-ctx.Done():
	case sig := <-b.SignalChan:
		b.Logger.Info("Received signal, initiating graceful shutdown", zap.Stringer("signal", sig))
	}

	if healthServer != nil {
		healthServer.Close()
	}
	for _, s := range services {
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			b.Logger.Warn("Failed to close listener", zap.String("service", s.name), zap.Error(err))
		}
	}

	if err = g.Wait(); err != nil {
		return fmt.Errorf("service error: %w", err)
	}
	return nil
}
