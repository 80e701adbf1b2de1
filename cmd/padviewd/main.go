// Command padviewd polls connected controllers, normalizes their input
// and serves per-player state and button events over WebSocket.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/openpad/gamepad"
	"github.com/openpad/gamepad/internal/config"
	"github.com/openpad/gamepad/internal/hub"
	"github.com/openpad/gamepad/internal/monitoring"
	"github.com/openpad/gamepad/internal/poller"
	"github.com/openpad/gamepad/internal/server"
	"github.com/openpad/gamepad/internal/tray"
)

// os.Interrupt covers Ctrl+C on Windows as well as SIGINT on Unix.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	confPath := pflag.StringP("config", "c", "", "path to the configuration directory")
	debug := pflag.BoolP("debug", "d", false, "enable debug logging")
	pflag.Parse()

	conf, err := config.Load(*confPath)
	log := newLogger(*debug || conf.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	mode, err := gamepad.ParseDeadZone(conf.Input.DeadZone)
	if err != nil {
		log.Fatal().Err(err).Msg("bad dead-zone config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	driver, sdlDriver, err := newDriver(conf.Input, log)
	if err != nil {
		log.Fatal().Err(err).Msg("select input backend")
	}

	pad := gamepad.New(driver)
	defer pad.Close()

	p := poller.New(pad, mode, conf.Input.PollInterval(), log)

	h := hub.New(log)
	go h.Run(ctx)

	b := hub.NewBroadcaster(h, p.Updates(), log)
	go b.Run(ctx)

	srv := server.New(h, b, p, conf.Server.Addr, log)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	var mon *monitoring.Monitoring
	if conf.Monitoring.Enabled {
		mon = monitoring.New(conf.Monitoring, log)
		go func() {
			if err := mon.Run(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("monitoring server")
			}
		}()
	}

	// The SDL backend pumps events on its own locked thread.
	sdlDone := make(chan struct{})
	if sdlDriver != nil {
		go func() {
			if err := sdlDriver.Run(ctx); err != nil && err != context.Canceled {
				log.Error().Err(err).Msg("sdl driver")
			}
			close(sdlDone)
		}()
	} else {
		close(sdlDone)
	}

	go p.Run(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	shutdownRequested := make(chan struct{})
	if runtime.GOOS == "windows" {
		go func() {
			t := tray.New("http://localhost"+conf.Server.Addr, func() {
				close(shutdownRequested)
			}, log)
			t.Run()
		}()
	} else {
		log.Info().Msg("press Ctrl+C to exit")
	}

	log.Info().Str("addr", conf.Server.Addr).Msg("padviewd started")

	select {
	case <-sigCh:
		log.Info().Msg("shutting down")
	case <-shutdownRequested:
		log.Info().Msg("shutdown requested from tray")
	case err := <-serverErrCh:
		log.Error().Err(err).Msg("http server")
	}
	cancel()

	<-sdlDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	if mon != nil {
		if err := mon.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("monitoring shutdown")
		}
	}

	log.Info().Msg("padviewd stopped")
}

// newDriver selects the controller backend. The SDL backend is returned
// separately because its event pump has to be started by the caller.
func newDriver(conf config.Input, log zerolog.Logger) (gamepad.Driver, *gamepad.SDLDriver, error) {
	backend := conf.Backend
	if backend == "auto" {
		if runtime.GOOS == "windows" {
			backend = "xinput"
		} else {
			backend = "sdl"
		}
	}

	switch backend {
	case "xinput":
		return gamepad.NewPlatformDriver(log), nil, nil
	case "sdl":
		d := gamepad.NewSDLDriver(log)
		return d, d, nil
	case "null":
		return gamepad.NullDriver{}, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown input backend %q", conf.Backend)
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.000"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
