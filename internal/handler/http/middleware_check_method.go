// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
)

// methodNotRouted is chi's MethodNotAllowed hook. It answers 404 instead of
// 405, so a known path does not reveal itself to a wrong method.
func (h *Handler) methodNotRouted(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not routed")
	http.NotFound(w, r)
}
