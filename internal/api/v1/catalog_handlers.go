package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tecaikids/website/internal/backend"
	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/utils"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	backend Backend
	log     *zap.Logger
}

func NewCatalogHandler(b Backend, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{backend: b, log: log}
}

// GET /api/v1/programs
// On failure the data is an empty list, as on the landing page.
func (h *CatalogHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.backend.FetchPrograms(r.Context())
	if err != nil {
		h.log.Warn("list programs", zap.Error(err))
		utils.WriteJSONResponse(w, http.StatusBadGateway, false, "programs unavailable", []models.Program{}, nil)
		return
	}
	if programs == nil {
		programs = []models.Program{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "", programs, nil)
}

// GET /api/v1/programs/{program_type}
func (h *CatalogHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	pt := models.ProgramType(chi.URLParam(r, "program_type"))
	if !pt.Valid() {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "unknown program type", nil, nil)
		return
	}
	p, err := h.backend.FetchProgram(r.Context(), pt)
	if err != nil {
		h.log.Warn("get program", zap.String("program_type", string(pt)), zap.Error(err))
		if backend.IsNotFound(err) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "program not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusBadGateway, false, "program unavailable", nil, nil)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "", p, nil)
}

// GET /api/v1/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.backend.FetchStats(r.Context())
	if err != nil {
		h.log.Warn("get stats", zap.Error(err))
		utils.WriteJSONResponse(w, http.StatusBadGateway, false, "stats unavailable", models.Stats{}, nil)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "", stats, nil)
}
