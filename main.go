package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neobank/payflow/api/payment"
	"github.com/neobank/payflow/client"
	cf "github.com/neobank/payflow/pkg/config"
	"github.com/neobank/payflow/pkg/logger"
	"github.com/neobank/payflow/pkg/token/paseto"
	"github.com/neobank/payflow/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := cf.LoadConfig("./")

	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger.Setup(config.ENV)

	tokenMaker, err := paseto.NewPasetoMaker(config.SymmetricKey)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create token maker")
	}

	bank := client.NewRestClient(&config)

	server, err := server.NewServer(bank, &config, tokenMaker)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	// Routes
	paymentHandler := payment.NewPaymentHandler(server)
	paymentHandler.MapRoutes()

	server.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	server.Router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("cannot start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("cannot stop server")
	}
}
