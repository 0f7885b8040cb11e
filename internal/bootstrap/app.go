package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/builder"
	"resume-builder/internal/drafts"
	"resume-builder/internal/preview"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/render"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Dialect        db.Dialect
	Store          object.ObjectStore
	DraftsRepo     drafts.Repo
	Renderer       *render.Renderer
	Preview        *preview.Service
	DraftsService  *drafts.Service
	DraftsHandler  *drafts.Handler
	BuilderHandler *builder.Handler
	Health         *health.Service
}

// Build connects storage, wires services and mounts routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	sqlDB, target, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB
	app.Dialect = target.Dialect

	store, err := buildStore(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Store = store

	app.DraftsRepo = buildRepo(sqlDB, target.Dialect)
	app.Renderer = render.NewRenderer(render.DefaultSource(cfg.TemplatePaths))
	checkTemplate(app.Renderer)
	app.Preview = preview.New(app.Renderer)
	app.DraftsService = drafts.NewService(app.DraftsRepo, app.Store, app.Preview)
	app.DraftsHandler = drafts.NewHandler(app.DraftsService)
	app.BuilderHandler = builder.NewHandler(app.Preview)

	var pinger health.Pinger
	if sqlDB != nil {
		pinger = sqlDB
	}
	app.Health = health.NewService(pinger, cfg.ObjectStoreType)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:  cfg,
		Health:  app.Health,
		Builder: app.BuilderHandler,
		Drafts:  app.DraftsHandler,
	})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, db.Target, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; drafts are kept in memory")
		return nil, db.Target{}, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, target, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; drafts are kept in memory: %v", err)
			return nil, db.Target{}, nil
		}
		return nil, db.Target{}, err
	}
	if err := db.RunMigrations(ctx, sqlDB, target.Dialect); err != nil {
		_ = sqlDB.Close()
		return nil, db.Target{}, fmt.Errorf("migrate %s: %w", target.Dialect, err)
	}
	return sqlDB, target, nil
}

func buildRepo(sqlDB *sql.DB, dialect db.Dialect) drafts.Repo {
	if sqlDB == nil {
		return drafts.NewMemoryRepo()
	}
	if dialect == db.DialectSQLite {
		return &drafts.SQLiteRepo{DB: sqlDB}
	}
	return &drafts.PGRepo{DB: sqlDB}
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// checkTemplate logs which template will be used and any slots it lacks.
// Rendering still proceeds with an incomplete template.
func checkTemplate(r *render.Renderer) {
	tmpl, ok := r.Source.Resolve()
	if !ok {
		telemetry.Warn("render.template_missing", nil)
		return
	}
	if missing := tmpl.Missing(); len(missing) > 0 {
		telemetry.Warn("render.template_incomplete", map[string]any{
			"origin":  tmpl.Origin,
			"missing": missing,
		})
		return
	}
	log.Printf("bootstrap: resume template %s", tmpl.Origin)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
