package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/neobank/payflow/client"
	pkg "github.com/neobank/payflow/pkg/config"
	"github.com/neobank/payflow/pkg/token"
	"github.com/neobank/payflow/pkg/token/paseto"
	"github.com/neobank/payflow/validations"
	"github.com/neobank/payflow/workflow"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// Server serves HTTP requests for the payment workflow gateway.
type Server struct {
	Config     *pkg.Config
	Bank       client.BankServices
	Router     *gin.Engine
	TokenMaker token.Maker
	Workflows  *workflow.Registry
	HttpServer *http.Server
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(bank client.BankServices, config *pkg.Config, tokenMaker token.Maker) (*Server, error) {
	server := &Server{
		Config:     config,
		Bank:       bank,
		TokenMaker: tokenMaker,
		Workflows:  workflow.NewRegistry(bank),
	}

	router := gin.Default()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("amount", validations.ValidAmount)
	}

	server.Router = router
	return server, nil
}

// NewTestServer creates a new HTTP server for testing.
func NewTestServer(t *testing.T, bank client.BankServices, cf *pkg.Config) *Server {
	tokenMaker, err := paseto.NewPasetoMaker(cf.SymmetricKey)
	require.NoError(t, err)

	server, err := NewServer(bank, cf, tokenMaker)
	require.NoError(t, err)

	return server
}

func (server *Server) Start() error {
	if server.HttpServer == nil {
		server.HttpServer = &http.Server{
			Addr:    server.Config.HttpServerAddress,
			Handler: server.Router,
		}
	}

	log.Info().Msgf("starting HTTP server on %s", server.Config.HttpServerAddress)
	if err := server.HttpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (server *Server) Stop(ctx context.Context) error {
	log.Info().Msg("gracefully stopping HTTP server")
	err := server.HttpServer.Shutdown(ctx)

	if err != nil {
		log.Error().Err(err).Msg("fail to stop HTTP server")
		return err
	}
	log.Info().Msg("HTTP server shutdown is complete")
	return nil
}
