package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/DoyleJ11/lol-cooldowns/internal/aggregator"
	"github.com/DoyleJ11/lol-cooldowns/internal/types"
	"go.uber.org/zap"
)

type Collector interface {
	Collect(ctx context.Context) (aggregator.Result, error)
}

// Cooldowns serves the cooldown payload of the live match. Only a failed
// roster read fails the request.
func Cooldowns(c Collector, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := c.Collect(r.Context())
		if err != nil {
			logger.Error("fetch live data", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{Error: types.LiveDataError})
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
