package router

import (
	"fmt"
	"net/http"

	"shelter/internal/adapters/auth/azuread"
	"shelter/internal/adapters/auth/jwtbearer"
	mem "shelter/internal/adapters/storage/memory"
	"shelter/internal/authz"
	"shelter/internal/config"
	"shelter/internal/crud"
	_ "shelter/internal/docs"
	"shelter/internal/domain/inquiries"
	"shelter/internal/domain/pets"
	"shelter/internal/middleware"
	"shelter/internal/platform/logger"
	"shelter/internal/platform/problem"
	"shelter/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Policies []authz.Policy
	Logger   logger.Logger // nil => no loguea

	// Opcionales: si vienen nil se crean stores en memoria vacíos.
	Pets      crud.Datastore[pets.Pet]
	Inquiries crud.Datastore[inquiries.Inquiry]
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	evaluator, err := authz.NewEvaluator(opts.Policies)
	if err != nil {
		return nil, err
	}
	// Toda política referenciada por un recurso tiene que existir.
	for _, res := range []crud.Resource{pets.Resource, inquiries.Resource} {
		for _, name := range []string{res.Policies.List, res.Policies.Get, res.Policies.Create, res.Policies.Modify} {
			if name == "" {
				continue
			}
			if _, err := evaluator.Policy(name); err != nil {
				return nil, fmt.Errorf("resource %s: %w", res.Plural, err)
			}
		}
	}

	petStore := opts.Pets
	if petStore == nil {
		petStore = mem.NewDatastore[pets.Pet]()
	}
	inquiryStore := opts.Inquiries
	if inquiryStore == nil {
		inquiryStore = mem.NewDatastore[inquiries.Inquiry]()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.NotFound(problem.NotFound)
	r.MethodNotAllowed(problem.MethodNotAllowed)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	authorizer := middleware.NewAuthorizer(evaluator)
	validate := crud.NewValidator()

	r.Route("/api/v1", func(v1 chi.Router) {
		pets.RegisterRoutes(v1, petStore, authorizer.Require, validate)
		inquiries.RegisterRoutes(v1, inquiryStore, authorizer.Require, validate)
	})

	return r, nil
}

// NewVerifier arma el verifier según Authentication.Mode.
// En modo None devuelve nil (AuthContext pasa a modo dev).
func NewVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	a := cfg.Authentication
	switch {
	case cfg.IsMode(config.ModeNone):
		return nil, nil
	case cfg.IsMode(config.ModeAzureAD):
		v, err := azuread.NewVerifier(azuread.Config{
			Instance: a.AzureAD.Instance,
			TenantID: a.AzureAD.TenantID,
			ClientID: a.AzureAD.ClientID,
			Issuer:   a.AzureAD.Issuer,
			JwksURL:  a.AzureAD.JwksURL,
		})
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		v, err := jwtbearer.NewVerifier(jwtbearer.Config{
			SigningKey: a.JwtBearer.SigningKey,
			Issuer:     a.JwtBearer.Issuer,
			Audience:   a.JwtBearer.Audience,
		})
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
