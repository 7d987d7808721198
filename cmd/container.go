package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/udistrital/unidoc_api/pkg/fsx"
	"github.com/udistrital/unidoc_api/pkg/fsx/fsxs3"
	"github.com/udistrital/unidoc_api/pkg/iam/auth"
	"github.com/udistrital/unidoc_api/pkg/logx"
	"github.com/udistrital/unidoc_api/portal/aspirante/aspiranteapi"
	"github.com/udistrital/unidoc_api/portal/aspirante/aspiranteinfra"
	"github.com/udistrital/unidoc_api/portal/aspirante/aspirantesrv"
	"github.com/udistrital/unidoc_api/portal/contratacion/contratacionapi"
	"github.com/udistrital/unidoc_api/portal/contratacion/contratacioninfra"
	"github.com/udistrital/unidoc_api/portal/contratacion/contratacionsrv"
	"github.com/udistrital/unidoc_api/portal/convocatoria/convocatoriaapi"
	"github.com/udistrital/unidoc_api/portal/convocatoria/convocatoriainfra"
	"github.com/udistrital/unidoc_api/portal/convocatoria/convocatoriasrv"
	"github.com/udistrital/unidoc_api/portal/expediente/expedienteapi"
	"github.com/udistrital/unidoc_api/portal/expediente/expedienteinfra"
	"github.com/udistrital/unidoc_api/portal/expediente/expedientesrv"
)

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Services
	TokenService        auth.TokenService
	AspiranteService    *aspirantesrv.AspiranteService
	ExpedienteService   *expedientesrv.ExpedienteService
	ConvocatoriaService *convocatoriasrv.ConvocatoriaService
	ContratacionService *contratacionsrv.ContratacionService

	// API Handlers
	AspiranteHandlers    *aspiranteapi.Handlers
	ExpedienteHandlers   *expedienteapi.Handlers
	ConvocatoriaHandlers *convocatoriaapi.Handlers
	ContratacionHandlers *contratacionapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection (posting-board cache)
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration (document storage)
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "documentos")

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	aspiranteRepo := aspiranteinfra.NewPostgresAspiranteRepository(c.DB)
	expedienteRepo := expedienteinfra.NewPostgresExpedienteRepository(c.DB)
	convocatoriaRepo := convocatoriainfra.NewPostgresConvocatoriaRepository(c.DB)
	contratacionRepo := contratacioninfra.NewPostgresContratacionRepository(c.DB)

	// --- Infrastructure Services ---
	convocatoriaCache := convocatoriainfra.NewRedisCache(c.Redis)
	passwordSvc := auth.NewBcryptPasswordService()

	// Token Service
	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)

	// --- Domain Services ---
	c.AspiranteService = aspirantesrv.NewAspiranteService(aspiranteRepo, passwordSvc, c.TokenService)
	c.ExpedienteService = expedientesrv.NewExpedienteService(expedienteRepo, c.FileSystem)
	c.ConvocatoriaService = convocatoriasrv.NewConvocatoriaService(convocatoriaRepo, convocatoriaCache, c.FileSystem)
	c.ContratacionService = contratacionsrv.NewContratacionService(contratacionRepo, c.AspiranteService)

	// --- Handlers ---
	c.AspiranteHandlers = aspiranteapi.NewHandlers(c.AspiranteService)
	c.ExpedienteHandlers = expedienteapi.NewHandlers(c.ExpedienteService)
	c.ConvocatoriaHandlers = convocatoriaapi.NewHandlers(c.ConvocatoriaService)
	c.ContratacionHandlers = contratacionapi.NewHandlers(c.ContratacionService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService)
}
