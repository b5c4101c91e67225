package http

import (
	"github.com/MKhiriev/go-payment-system/internal/config"
	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/internal/service"
)

// formMemoryLimit is the part of a multipart body kept in memory while
// parsing; larger parts spill to temporary files.
const formMemoryLimit = 1 << 20

// formFieldsOverhead is the room left for the text fields and multipart
// boundaries on top of the receipt size limit.
const formFieldsOverhead = 64 << 10

type Handler struct {
	services *service.Services

	server config.Server
	files  config.Files

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, files config.Files, logger *logger.Logger) *Handler {
	logger.Info().
		Str("upload_dir", files.UploadDir).
		Str("public_path", files.PublicPath).
		Msg("http handler created")
	return &Handler{
		services: services,
		server:   server,
		files:    files,
		logger:   logger,
	}
}

// maxBodySize is the largest request body accepted by the pay endpoint.
func (h *Handler) maxBodySize() int64 {
	limit := h.server.MaxUploadSize
	if limit <= 0 {
		limit = config.DefaultMaxUploadSize
	}

	return limit + formFieldsOverhead
}
