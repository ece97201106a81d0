package http

import (
	"net/http"

	"github.com/MKhiriev/go-login-bridge/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// requestIDHeader is what the client login service sends.
const requestIDHeader = "X-Request-ID"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = r.Header.Get(requestIDHeader)
		}
		if traceID == "" {
			traceID = utils.NewUUID().String()
		}

		l := h.logger.WithStr("trace_id", traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
