package main

import (
	"Loudspeaker/internal/auth"
	"Loudspeaker/internal/calc/amplitude"
	"Loudspeaker/internal/calc/box"
	"Loudspeaker/internal/calc/crossover"
	"Loudspeaker/internal/calc/premium/autodesign"
	"Loudspeaker/internal/calc/premium/batch"
	"Loudspeaker/internal/calc/premium/export"
	"Loudspeaker/internal/calc/premium/importer"
	"Loudspeaker/internal/calc/premium/recommend"
	"Loudspeaker/internal/calc/report"
	"Loudspeaker/internal/calc/resonance"
	"Loudspeaker/internal/calc/spl"
	"Loudspeaker/internal/calc/thinfilm"
	"Loudspeaker/internal/calc/tsparams"
	"Loudspeaker/internal/calc/xmax"
	"Loudspeaker/internal/config"
	"Loudspeaker/internal/driver"
	"Loudspeaker/internal/repo"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(origin string, mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept-Language")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// HandleList registers every route and returns the limiter guarding /api.
// userRepo may be nil, in which case the account and driver-library routes
// are left out.
func HandleList(mux *mux.Router, cfg config.Config, userRepo repo.Repository) *auth.IPRateLimiter {
	lang := cfg.DefaultLang
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	tsH := &tsparams.Handler{Lang: lang}
	splH := &spl.Handler{Lang: lang}
	amplitudeH := &amplitude.Handler{Lang: lang}
	crossoverH := &crossover.Handler{Lang: lang}
	boxH := &box.Handler{Lang: lang}
	thinfilmH := &thinfilm.Handler{Lang: lang}
	xmaxH := &xmax.Handler{Lang: lang}
	resonanceH := &resonance.Handler{Lang: lang}

	api.HandleFunc("/calc/ts", tsH.Calc).Methods("POST")
	api.HandleFunc("/calc/spl", splH.Calc).Methods("POST")
	api.HandleFunc("/calc/spl/advanced", splH.Advanced).Methods("POST")
	api.HandleFunc("/calc/amplitude", amplitudeH.Calc).Methods("POST")
	api.HandleFunc("/calc/crossover", crossoverH.Calc).Methods("POST")
	api.HandleFunc("/calc/box", boxH.Calc).Methods("POST")
	api.HandleFunc("/calc/thinfilm", thinfilmH.Calc).Methods("POST")
	api.HandleFunc("/calc/xmax", xmaxH.Calc).Methods("POST")
	api.HandleFunc("/calc/resonance", resonanceH.Calc).Methods("POST")

	api.HandleFunc("/materials", thinfilmH.Materials).Methods("GET")
	api.HandleFunc("/crossover/filters", crossoverH.Filters).Methods("GET")

	reportH := &report.Handler{Lang: lang, FontFile: cfg.ReportFont}
	exportH := &export.Handler{}
	importH := &importer.Handler{Lang: lang}
	batchH := &batch.Handler{Lang: lang}
	autoH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}

	api.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/export/xlsx", exportH.XLSX).Methods("POST")
	api.HandleFunc("/import/drivers", importH.Drivers).Methods("POST")
	api.HandleFunc("/batch/ts", batchH.TS).Methods("POST")
	api.HandleFunc("/design/box", autoH.Box).Methods("POST")
	api.HandleFunc("/design/lpad", recommendH.LPad).Methods("POST")

	if userRepo == nil {
		return limiter
	}
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: userRepo, Secure: cfg.TLS()}
	driverH := &driver.Handler{Repo: userRepo, Lang: lang}

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/drivers", driverH.List).Methods("GET")
	secureApi.HandleFunc("/drivers", driverH.Create).Methods("POST")
	secureApi.HandleFunc("/drivers/{id:[0-9]+}", driverH.Get).Methods("GET")
	secureApi.HandleFunc("/drivers/{id:[0-9]+}", driverH.Update).Methods("PUT")
	secureApi.HandleFunc("/drivers/{id:[0-9]+}", driverH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/drivers/{id:[0-9]+}/evaluate", driverH.Evaluate).Methods("POST")
	return limiter
}

func sweepClients(ctx context.Context, l *auth.IPRateLimiter) {
	defer wg.Done()
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := l.Sweep(); n > 0 {
				log.Printf("rate limiter: dropped %d idle clients", n)
			}
		}
	}
}

// openRepo returns nil when the driver library is disabled.
func openRepo(ctx context.Context, cfg config.Config) (repo.Repository, func(), error) {
	if !cfg.Library() {
		return nil, func() {}, nil
	}
	if cfg.DatabaseURL == "memory" {
		return repo.NewMemory(), func() {}, nil
	}
	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	pg := repo.NewPostgresUserDB(db)
	if err := pg.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return pg, func() { db.Close() }, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	userRepo, closeRepo, err := openRepo(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()
	if userRepo == nil {
		log.Println("DATABASE_URL not set, driver library disabled")
	}

	mux := mux.NewRouter()
	limiter := HandleList(mux, cfg, userRepo)
	handler := CORS(cfg.CORSOrigin, mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go sweepClients(ctx, limiter)

	log.Println("Starting server on", cfg.Addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	wg.Wait()
	log.Println("Server stopped")
}
