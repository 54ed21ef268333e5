package metrics

import (
	"net/http"
	"net/http/pprof"

	"go-survivor/internal/logging"
)

// DebugMux — /metrics коллектора и pprof на отдельном мультиплексоре.
func DebugMux(c *Collector) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// ServeDebug запускает отладочный сервер в фоне. Ошибка сервера не роняет игру.
func ServeDebug(addr string, c *Collector) {
	go func() {
		logging.Info("debug server on %s", addr)
		logging.Warn("debug server stopped: %v", http.ListenAndServe(addr, DebugMux(c)))
	}()
}
