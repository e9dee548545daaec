package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/recipes"
	"recipe-backend/internal/services/health"
	"recipe-backend/internal/shared/config"
	"recipe-backend/internal/shared/server"
	"recipe-backend/internal/shared/server/middleware"
	"recipe-backend/internal/shared/storage/object"
	localstore "recipe-backend/internal/shared/storage/object/local"
	s3store "recipe-backend/internal/shared/storage/object/s3"
	"recipe-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Objects        object.ObjectStore
	RecipeStore    *recipes.Store
	RecipeService  *recipes.Service
	RecipeHandler  *recipes.Handler
	HealthService  *health.Service
	WriteRateLimit *middleware.RateLimiter
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if strings.TrimSpace(cfg.RecipesKey) == "" {
		cfg.RecipesKey = "recipes.json"
	}

	objects, err := buildStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return BuildWithStore(cfg, objects), nil
}

// BuildWithStore wires the app over an existing object store.
func BuildWithStore(cfg config.Config, objects object.ObjectStore) *App {
	store := recipes.NewStore(objects, cfg.RecipesKey)
	svc := recipes.NewService(store)

	app := &App{
		Config:         cfg,
		Objects:        objects,
		RecipeStore:    store,
		RecipeService:  svc,
		RecipeHandler:  recipes.NewHandler(svc, cfg.MaxBodyBytes),
		HealthService:  health.NewService(store),
		WriteRateLimit: middleware.NewRateLimiter(nil),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		RecipeHandler: app.RecipeHandler,
		Health:        app.HealthService,
		Limiter:       app.WriteRateLimit,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"object_store": cfg.ObjectStoreType,
		"recipes_key":  cfg.RecipesKey,
	})
	return app
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.DataDir), nil
	}
}
