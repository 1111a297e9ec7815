package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"nbst/pkg/nbtree"
)

// apiResponse is the JSON envelope every handler writes, mirroring the
// demonstrator-server convention of a flat success/data/error shape.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an HTTP server exposing the set and Prometheus metrics",
	Long: `Start an HTTP server that keeps one set alive for the life of
the process and exposes it over HTTP/JSON, plus a Prometheus /metrics
endpoint. Unlike the other subcommands, state here persists across
requests within this one process - there is still no cross-process or
on-disk persistence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newDemoTree()
		if err != nil {
			return fmt.Errorf("construct set: %w", err)
		}

		registry := prometheus.NewRegistry()
		metrics := newServerMetrics(registry, tr)

		r := chi.NewRouter()
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)

		r.Get("/healthz", handleHealth)
		r.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)

		r.Route("/v1", func(r chi.Router) {
			r.Get("/size", handleSize(tr, metrics))
			r.Get("/snapshot", handleSnapshot(tr, metrics))
			r.Get("/contains/{key}", handleContains(tr, metrics))
			r.Post("/insert/{key}", handleInsert(tr, metrics))
			r.Delete("/delete/{key}", handleDelete(tr, metrics))
		})

		addr := fmt.Sprintf(":%d", servePort)
		fmt.Printf("nbtreedemo serving on %s\n", addr)
		return http.ListenAndServe(addr, r)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func handleSize(tr *nbtree.Tree[int64], m *serverMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sendSuccess(w, map[string]uint64{"size": tr.Size()})
	}
}

func handleSnapshot(tr *nbtree.Tree[int64], m *serverMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		keys, err := tr.Snapshot()
		m.opDuration.WithLabelValues("snapshot").Observe(time.Since(start).Seconds())
		if err != nil {
			m.opsTotal.WithLabelValues("snapshot", statusError).Inc()
			sendError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		m.opsTotal.WithLabelValues("snapshot", statusSuccess).Inc()
		sendSuccess(w, map[string]any{"keys": keys})
	}
}

func handleContains(tr *nbtree.Tree[int64], m *serverMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := parsePathKey(r)
		if err != nil {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}

		start := time.Now()
		present, err := tr.Contains(key)
		m.opDuration.WithLabelValues("contains").Observe(time.Since(start).Seconds())
		if err != nil {
			m.opsTotal.WithLabelValues("contains", statusError).Inc()
			sendErrFromOp(w, err)
			return
		}
		m.opsTotal.WithLabelValues("contains", statusSuccess).Inc()
		sendSuccess(w, map[string]bool{"present": present})
	}
}

func handleInsert(tr *nbtree.Tree[int64], m *serverMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := parsePathKey(r)
		if err != nil {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}

		start := time.Now()
		added, err := tr.Insert(key)
		m.opDuration.WithLabelValues("insert").Observe(time.Since(start).Seconds())
		if err != nil {
			m.opsTotal.WithLabelValues("insert", statusError).Inc()
			sendErrFromOp(w, err)
			return
		}
		m.opsTotal.WithLabelValues("insert", statusSuccess).Inc()
		sendSuccess(w, map[string]bool{"added": added})
	}
}

func handleDelete(tr *nbtree.Tree[int64], m *serverMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := parsePathKey(r)
		if err != nil {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}

		start := time.Now()
		removed, err := tr.Delete(key)
		m.opDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
		if err != nil {
			m.opsTotal.WithLabelValues("delete", statusError).Inc()
			sendErrFromOp(w, err)
			return
		}
		m.opsTotal.WithLabelValues("delete", statusSuccess).Inc()
		sendSuccess(w, map[string]bool{"removed": removed})
	}
}

func parsePathKey(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "key")
	var key int64
	if _, err := fmt.Sscanf(raw, "%d", &key); err != nil {
		return 0, fmt.Errorf("invalid key %q", raw)
	}
	return key, nil
}

// sendErrFromOp maps a core error to an HTTP status: ErrInvalidArgument
// is the caller's fault (400); anything else is ours (500).
func sendErrFromOp(w http.ResponseWriter, err error) {
	if err == nbtree.ErrInvalidArgument {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	sendError(w, err.Error(), http.StatusInternalServerError)
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

func sendSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data})
}

func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(apiResponse{Success: false, Error: message}); err != nil {
		log.Printf("sendError: encode response: %v", err)
	}
}
