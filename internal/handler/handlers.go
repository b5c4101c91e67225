package handler

import (
	"github.com/MKhiriev/go-payment-system/internal/config"
	"github.com/MKhiriev/go-payment-system/internal/handler/http"
	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, files config.Files, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, files, logger),
	}, nil
}
