package main

import (
	auth "ColumnSolver/internal/auth"
	batch "ColumnSolver/internal/calc/batch"
	column "ColumnSolver/internal/calc/column"
	importer "ColumnSolver/internal/calc/importer"
	report "ColumnSolver/internal/calc/report"
	"ColumnSolver/internal/config"
	"ColumnSolver/internal/metrics"
	"context"
	"errors"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

const (
	limiterSweepEvery = time.Minute
	limiterMaxIdle    = 10 * time.Minute
)

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLog tags each request with an X-Request-ID and logs its outcome.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %s %d %s", id, r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}

// HandleList registers every route. The rate limiter sweep stops with ctx.
func HandleList(ctx context.Context, mux *mux.Router, cfg config.Config) {
	mux.Use(RequestLog)

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	go limiter.Sweep(ctx, limiterSweepEvery, limiterMaxIdle)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	if cfg.AuthEnabled() {
		authEnv := &auth.Authenv{JWTkey: cfg.TokenKey}
		api.Use(authEnv.AuthMiddleware)
	} else {
		log.Println("TOKEN_KEY is not set, API is open")
	}

	columnH := &column.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/tools/column/calc", columnH.Calc).Methods("POST")
	api.HandleFunc("/tools/column/straight/calc", columnH.CalcCase(column.CaseStraight)).Methods("POST")
	api.HandleFunc("/tools/column/crooked/calc", columnH.CalcCase(column.CaseCrooked)).Methods("POST")
	api.HandleFunc("/tools/column/eccentric/calc", columnH.CalcCase(column.CaseEccentric)).Methods("POST")
	api.HandleFunc("/tools/column/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/tools/column/import", importH.Import).Methods("POST")
	api.HandleFunc("/tools/column/report/pdf", reportH.Generate).Methods("POST")

	mux.Handle("/metrics", metrics.Handler()).Methods("GET")
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	}).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	mux := mux.NewRouter()
	log.Printf("Starting server on %s", cfg.Addr)
	HandleList(ctx, mux, cfg)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
