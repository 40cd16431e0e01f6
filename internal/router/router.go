package router

import (
	"context"
	"database/sql"
	"net/http"

	_ "animal-zoo/docs"
	mem "animal-zoo/internal/adapters/storage/memory"
	pg "animal-zoo/internal/adapters/storage/postgres"
	"animal-zoo/internal/domain/animals"
	"animal-zoo/internal/domain/journal"
	"animal-zoo/internal/domain/zoo"
	"animal-zoo/internal/middleware"
	"animal-zoo/internal/platform/logger"
	"animal-zoo/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger    // nil => no-op
	Metrics *metrics.Metrics // nil => se crea uno propio

	// Animales a admitir al construir el router (roster de arranque).
	// Solo se admiten si no hay residentes todavía.
	Seed []animals.Animal
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		residentRepo zoo.Repository
		journalRepo  journal.Repository
	)

	if opts.DB != nil {
		residentRepo = pg.NewResidentsRepo(opts.DB)
		journalRepo = pg.NewJournalRepo(opts.DB)
	} else {
		residentRepo = mem.NewResidentRepo()
		journalRepo = mem.NewJournalRepo()
	}

	// Services por módulo
	journalSvc := journal.NewService(journalRepo)
	zooSvc := zoo.NewService(residentRepo,
		zoo.WithJournal(journalSvc),
		zoo.WithMetrics(m),
		zoo.WithLogger(log),
	)

	if _, err := zooSvc.Seed(context.Background(), opts.Seed); err != nil {
		log.Error("seed admission failed", map[string]any{"err": err})
	}

	// Rutas por módulo
	zoo.RegisterRoutes(r, zooSvc)
	journal.RegisterRoutes(r, journalSvc, zooSvc)

	return r
}
