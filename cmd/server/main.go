package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"minasle/backend/config"
	"minasle/backend/internal/api/handler"
	"minasle/backend/internal/api/router"
	"minasle/backend/internal/repository"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/database"
	"minasle/backend/pkg/jwt"
	"minasle/backend/pkg/logger"
	"minasle/backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "caminho do arquivo de configuração")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuração: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("banco de dados indisponível", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("falha ao obter sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("falha nas migrações", zap.Error(err))
	}

	// Redis is optional: without it the server runs with no token
	// blacklist and no rate limiting
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis indisponível, seguindo sem revogação de tokens", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, rdb, log)
	h := handler.NewHandler(svc, cfg, log)
	engine := router.Setup(cfg, h, jwtMgr, rdb, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("servidor iniciado", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("encerrando servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("encerramento forçado", zap.Error(err))
	}

	log.Info("servidor encerrado")
}
