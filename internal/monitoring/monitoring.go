// Package monitoring exposes prometheus metrics and optional pprof
// endpoints on a separate HTTP listener.
package monitoring

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/openpad/gamepad/internal/config"
)

type Monitoring struct {
	conf   config.Monitoring
	server *http.Server
	log    zerolog.Logger
}

func New(conf config.Monitoring, log zerolog.Logger) *Monitoring {
	h := http.NewServeMux()

	if conf.ProfilingEnabled {
		prefix := conf.URLPrefix + "/debug/pprof"
		h.HandleFunc(prefix+"/", pprof.Index)
		h.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
		h.HandleFunc(prefix+"/profile", pprof.Profile)
		h.HandleFunc(prefix+"/symbol", pprof.Symbol)
		h.HandleFunc(prefix+"/trace", pprof.Trace)
		h.Handle(prefix+"/allocs", pprof.Handler("allocs"))
		h.Handle(prefix+"/block", pprof.Handler("block"))
		h.Handle(prefix+"/goroutine", pprof.Handler("goroutine"))
		h.Handle(prefix+"/heap", pprof.Handler("heap"))
		h.Handle(prefix+"/mutex", pprof.Handler("mutex"))
		h.Handle(prefix+"/threadcreate", pprof.Handler("threadcreate"))
	}

	if conf.MetricEnabled {
		h.Handle(conf.URLPrefix+"/metrics", promhttp.Handler())
	}

	return &Monitoring{
		conf:   conf,
		server: &http.Server{Addr: fmt.Sprintf(":%d", conf.Port), Handler: h},
		log:    log,
	}
}

func (m *Monitoring) Run() error {
	m.log.Info().Str("addr", m.server.Addr).
		Bool("metrics", m.conf.MetricEnabled).
		Bool("pprof", m.conf.ProfilingEnabled).
		Msg("monitoring server listening")
	return m.server.ListenAndServe()
}

func (m *Monitoring) Shutdown(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}
