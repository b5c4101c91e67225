package http

import (
	"net/http"

	"github.com/MKhiriev/go-payment-system/models"
)

const msgVersion = "Version"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)

	writeSuccess(w, r, models.VersionResponse{
		Version:      h.services.AppInfoService.GetAppVersion(ctx),
		BuildVersion: buildInfo.BuildVersion(),
		BuildDate:    buildInfo.BuildDate(),
		BuildCommit:  buildInfo.BuildCommit(),
	}, msgVersion)
}
