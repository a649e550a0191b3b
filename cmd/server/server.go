package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"gamebuddy/internal/config"
	"gamebuddy/internal/database"
	"gamebuddy/internal/handlers"
	"gamebuddy/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Logger     *zap.Logger
	cfg        *config.Config
}

func NewServer() *Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		logger.Fatal("postgres connect failed", zap.Error(err))
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal("invalid REDIS_URL", zap.Error(err))
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	denylist := auth.NewDenylist(rdb)

	authH := handlers.NewAuthHandler(dbConn, dbConn, jwtMgr, denylist, logger)
	profileH := handlers.NewProfileHandler(dbConn, logger)
	postH := handlers.NewPostHandler(dbConn, logger)

	router := gin.Default()
	APIEndpoints(router, authH, profileH, postH, jwtMgr, denylist)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Logger:     logger,
		cfg:        cfg,
	}
}

func (s *Server) Run() {
	s.Logger.Info("server starting", zap.String("port", s.cfg.Port))
	if err := s.Router.Run(":" + s.cfg.Port); err != nil {
		s.Logger.Fatal("server run error", zap.Error(err))
	}
}
