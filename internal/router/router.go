package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	mem "petclinic/internal/adapters/storage/memory"
	pg "petclinic/internal/adapters/storage/postgres"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/pets"
	"petclinic/internal/domain/pettypes"
	"petclinic/internal/domain/specialties"
	"petclinic/internal/domain/users"
	"petclinic/internal/domain/vets"
	"petclinic/internal/domain/visits"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // puede ser nil

	// Usuario admin inicial. Si vienen vacíos no se crea nada y el API
	// queda inaccesible hasta que alguien cargue users en el storage.
	AdminUser     string
	AdminPassword string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Logger != nil {
		r.Use(middleware.Logging(opts.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		ownerRepo     owners.Repository
		petRepo       pets.Repository
		typeRepo      pettypes.Repository
		specialtyRepo specialties.Repository
		vetRepo       vets.Repository
		visitRepo     visits.Repository
		userRepo      users.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		ownerRepo = pg.NewOwnersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		typeRepo = pg.NewPetTypesRepo(db)
		specialtyRepo = pg.NewSpecialtiesRepo(db)
		vetRepo = pg.NewVetsRepo(db)
		visitRepo = pg.NewVisitsRepo(db)
		userRepo = pg.NewUsersRepo(db)
	} else {
		store := mem.NewStore()
		ownerRepo = store.Owners()
		petRepo = store.Pets()
		typeRepo = store.PetTypes()
		specialtyRepo = store.Specialties()
		vetRepo = store.Vets()
		visitRepo = store.Visits()
		userRepo = store.Users()
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo)
	typesSvc := pettypes.NewService(typeRepo)
	specialtiesSvc := specialties.NewService(specialtyRepo)
	petsSvc := pets.NewService(petRepo, ownerRepo, typeRepo)
	visitsSvc := visits.NewService(visitRepo, petRepo)
	vetsSvc := vets.NewService(vetRepo, specialtyRepo)
	usersSvc := users.NewService(userRepo)

	if opts.AdminUser != "" {
		if err := usersSvc.EnsureAdmin(context.Background(), opts.AdminUser, opts.AdminPassword); err != nil && opts.Logger != nil {
			opts.Logger.Error("bootstrap admin", map[string]any{"error": err.Error()})
		}
	}

	// Todo bajo /api pide Basic auth; el rol lo chequea cada módulo.
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.BasicAuth(usersSvc))

		owners.RegisterRoutes(api, ownersSvc)
		pets.RegisterRoutes(api, petsSvc, typesSvc, visitsSvc)
		pettypes.RegisterRoutes(api, typesSvc)
		specialties.RegisterRoutes(api, specialtiesSvc)
		vets.RegisterRoutes(api, vetsSvc)
		visits.RegisterRoutes(api, visitsSvc)
		users.RegisterRoutes(api, usersSvc)
	})

	return r
}
