package http

import (
	"net/http"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.appInfo.GetBuildInfo(ctx)

	resp := versionResponse{
		Version: h.appInfo.GetAppVersion(ctx),
		Build:   build.BuildVersion(),
		Date:    build.BuildDate(),
		Commit:  build.BuildCommit(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version response")
	}
}
