package main

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/moneyport/moneyport/internal/accountdelivery"
	"github.com/moneyport/moneyport/internal/accountlock"
	"github.com/moneyport/moneyport/internal/accountrepo"
	"github.com/moneyport/moneyport/internal/accountservice"
	"github.com/moneyport/moneyport/internal/domain"
	"github.com/moneyport/moneyport/internal/middleware"
	"github.com/moneyport/moneyport/internal/transferdelivery"
	"github.com/moneyport/moneyport/internal/transferservice"
	"github.com/moneyport/moneyport/pkg/configpkg"
	"github.com/moneyport/moneyport/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	server, err := createServer(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

func createServer(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*gin.Engine, error) {
	accountRepo := accountrepo.NewRepoPGS(conn)

	lock, err := createLock(config)
	if err != nil {
		return nil, err
	}

	transferService := transferservice.New(accountRepo, lock, transferservice.Config{
		Threshold:     domain.NewMoney(config.TransferThreshold),
		BalanceWindow: config.BalanceWindow,
	})
	accountService := accountservice.New(accountRepo)

	transferHandler := transferdelivery.NewHandler(transferService)
	accountHandler := accountdelivery.NewHandler(accountService)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	server.POST("/transfers", transferHandler.Create)
	server.GET("/accounts/:id/balance", accountHandler.GetBalance)

	return server, nil
}

func createLock(config configpkg.Config) (transferservice.AccountLock, error) {
	switch config.LockBackend {
	case "memory":
		return accountlock.NewKeyedMutex(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddress})
		return accountlock.NewRedisLock(client, config.LockLease), nil
	}

	return nil, fmt.Errorf("unknown lock backend %q", config.LockBackend)
}
