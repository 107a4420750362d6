package v1

import (
	"net/http"
	"time"

	"github.com/tecaikids/website/internal/utils"
	"go.uber.org/zap"
)

// HealthHandler reports whether the backend API answers. Failure detail only
// goes to the log.
func HealthHandler(b Backend, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		greeting, err := b.Ping(r.Context())
		ok := err == nil
		data := map[string]interface{}{
			"backend": ok,
			"time":    time.Now(),
		}
		if !ok {
			log.Warn("health check", zap.Error(err))
			utils.WriteJSONResponse(w, http.StatusServiceUnavailable, false, "backend unreachable", data, nil)
			return
		}
		data["greeting"] = greeting
		utils.WriteJSONResponse(w, http.StatusOK, true, "ok", data, nil)
	}
}
