package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "sils-backend/internal/adapter/http"
	"sils-backend/internal/adapter/middleware"
	"sils-backend/internal/adapter/repository/mysql"
	"sils-backend/internal/config"
	"sils-backend/internal/domain/policy"
	"sils-backend/internal/infrastructure/cache"
	"sils-backend/internal/infrastructure/db"
	authuc "sils-backend/internal/usecase/auth"
	checkuc "sils-backend/internal/usecase/check"
	historyuc "sils-backend/internal/usecase/history"
	requestuc "sils-backend/internal/usecase/request"
	tooluc "sils-backend/internal/usecase/tool"
	useruc "sils-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	tools := mysql.NewToolRepository(gdb)
	requests := mysql.NewRequestRepository(gdb)
	checks := mysql.NewCheckRepository(gdb)
	details := mysql.NewCheckDetailRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	creds := mysql.NewCredentialRepository(gdb)
	movements := mysql.NewMovementRepository(gdb)
	notifs := mysql.NewNotificationRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	pol := policy.Policy{AllowAdminRequests: cfg.AllowAdminRequests}

	// usecases
	authUC := authuc.NewUsecase(users, creds, tx, cfg.JWTSecret, cfg.JWTTTL)
	toolUC := tooluc.NewUsecase(tools, pol)
	requestUC := requestuc.NewUsecase(requests, tools, tx, pol)
	checkUC := checkuc.NewUsecase(checks, details, tools, notifs, tx, pol, cfg.CheckLocation())
	userUC := useruc.NewUsecase(users, creds, pol)
	historyUC := historyuc.NewUsecase(movements, pol)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	toolH := httpadp.NewToolHandler(toolUC)
	requestH := httpadp.NewRequestHandler(requestUC)
	checkH := httpadp.NewCheckHandler(checkUC)
	userH := httpadp.NewUserHandler(userUC, historyUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// public
	e.GET("/health", h.Health)
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)

	auth := middleware.JWTAuth([]byte(cfg.JWTSecret), users)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// authenticated, role-assigned routes
	api := e.Group("", auth, middleware.RequireAssigned)
	mut := e.Group("", auth, middleware.RequireAssigned, idemp)

	api.GET("/herramientas", toolH.List)
	api.GET("/herramientas/estadisticas", toolH.Stats)
	api.GET("/herramientas/degradadas", toolH.ListDegraded)
	api.GET("/herramientas/:id", toolH.Get)
	mut.POST("/herramientas", toolH.Create)
	mut.PUT("/herramientas/:id", toolH.Update)
	mut.DELETE("/herramientas/:id", toolH.Delete)

	api.GET("/solicitudes", requestH.List)
	api.GET("/solicitudes/:id", requestH.Get)
	mut.POST("/solicitudes", requestH.Create)
	mut.POST("/solicitudes/:id/cancelar", requestH.Cancel)
	mut.POST("/solicitudes/:id/decidir", requestH.Decide)

	api.GET("/checks", checkH.List)
	api.GET("/checks/ventana", checkH.Window)
	api.GET("/checks/:id/detalle", checkH.Details)
	mut.POST("/checks/zonas/:zona/iniciar", checkH.Start)
	mut.POST("/checks/zonas/:zona/resetear", checkH.Reset)
	mut.POST("/checks/zonas/:zona/repetir", checkH.Repeat)
	mut.POST("/checks/:id/detalle", checkH.RecordDetail)
	mut.POST("/checks/:id/completar", checkH.Complete)
	mut.POST("/checks/:id/omitir", checkH.Skip)

	api.GET("/notificaciones", checkH.Notifications)
	mut.POST("/notificaciones/:id/leida", checkH.MarkNotificationRead)

	// admin-only
	admin := e.Group("", auth, middleware.RequireAdmin)
	admin.GET("/usuarios", userH.List)
	admin.PUT("/usuarios/:id/rol", userH.AssignRole)
	admin.DELETE("/usuarios/:id", userH.Delete)
	admin.GET("/historial", userH.History)

	// seed today's pending checks and sweep overdue ones in the background
	go func() {
		ctx := context.Background()
		tick := func() {
			if err := checkUC.EnsureToday(ctx); err != nil {
				log.Printf("checks: ensure today: %v", err)
			}
			if err := checkUC.SweepOverdue(ctx); err != nil {
				log.Printf("checks: sweep overdue: %v", err)
			}
		}
		tick()
		t := time.NewTicker(5 * time.Minute)
		defer t.Stop()
		for range t.C {
			tick()
		}
	}()

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
