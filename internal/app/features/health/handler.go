package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	// Airtable reports whether a GLI table was configured at startup.
	// The table itself is not contacted.
	Airtable bool
	Log      *zap.Logger
}

func NewHandler(client *mongo.Client, airtable bool, logger *zap.Logger) *Handler {
	return &Handler{
		Client:   client,
		Airtable: airtable,
		Log:      logger,
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Airtable string `json:"airtable"`
	Message  string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "airtable":"configured" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable" }
//
// Driver errors are logged only; they can name hosts and replica sets.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
		Airtable: "not_configured",
	}
	if h.Airtable {
		resp.Airtable = "configured"
	}

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		jsonutil.WriteJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	jsonutil.WriteJSON(w, http.StatusOK, resp)
}
