package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/raushankrgupta/virtual-tryon-api/models"
	"github.com/raushankrgupta/virtual-tryon-api/store"
	"github.com/raushankrgupta/virtual-tryon-api/tryon"
	"github.com/raushankrgupta/virtual-tryon-api/utils"
)

const maxUploadBytes = 32 << 20

// Handler translates the HTTP surface into manager calls.
type Handler struct {
	manager *tryon.Manager
}

// NewHandler creates the try-on HTTP handler.
func NewHandler(manager *tryon.Manager) *Handler {
	return &Handler{manager: manager}
}

// CreateTryOn handles POST /virtual-tryon. It expects a multipart form
// with model_image and clothing_image file fields and runs the job to a
// terminal state before responding.
func (h *Handler) CreateTryOn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid multipart form: %v", err))
		return
	}

	personFile, personHeader, err := r.FormFile("model_image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "model_image file is required")
		return
	}
	defer personFile.Close()

	clothingFile, clothingHeader, err := r.FormFile("clothing_image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "clothing_image file is required")
		return
	}
	defer clothingFile.Close()

	job, err := h.manager.Create(r.Context(),
		tryon.Upload{
			Reader:      personFile,
			Filename:    personHeader.Filename,
			ContentType: personHeader.Header.Get("Content-Type"),
		},
		tryon.Upload{
			Reader:      clothingFile,
			Filename:    clothingHeader.Filename,
			ContentType: clothingHeader.Header.Get("Content-Type"),
		})
	if err != nil {
		var validationErr *tryon.ValidationError
		if errors.As(err, &validationErr) {
			utils.RespondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Virtual try-on failed: "+err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, absolutizeJob(job, r))
}

// ListTryOns handles GET /virtual-tryon.
func (h *Handler) ListTryOns(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.manager.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Error retrieving try-ons: %v", err))
		return
	}

	data := make([]*models.TryOn, 0, len(jobs))
	for _, job := range jobs {
		data = append(data, absolutizeJob(job, r))
	}

	utils.RespondJSON(w, http.StatusOK, models.TryOnListResponse{
		Message: "Virtual try-ons retrieved successfully",
		Data:    data,
		Total:   len(data),
	})
}

// GetTryOn handles GET /virtual-tryon/{id}.
func (h *Handler) GetTryOn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.manager.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Virtual try-on not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
		return
	}

	utils.RespondJSON(w, http.StatusOK, absolutizeJob(job, r))
}

// GetResultImage handles GET /result/{id}. The image is served inline
// so browsers display it instead of downloading.
func (h *Handler) GetResultImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, err := h.manager.Result(r.Context(), id)
	if err != nil {
		var notCompleted *tryon.NotCompletedError
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.RespondError(w, http.StatusNotFound, "Virtual try-on not found")
		case errors.As(err, &notCompleted):
			utils.RespondError(w, http.StatusBadRequest, notCompleted.Error())
		case errors.Is(err, tryon.ErrResultMissing):
			utils.RespondError(w, http.StatusNotFound, "Result image not found")
		default:
			utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=result_%s.png", id))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		// Response already started; only logging is possible.
		log.Error().Err(err).Str("tryon_id", id).Msg("Error writing result image")
	}
}

// DeleteTryOn handles DELETE /virtual-tryon/{id}.
func (h *Handler) DeleteTryOn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.manager.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Virtual try-on not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Virtual try-on deleted successfully",
	})
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// absolutizeJob rewrites a stored relative result path into an absolute
// URL for the current request. Already-absolute URLs pass through.
func absolutizeJob(job *models.TryOn, r *http.Request) *models.TryOn {
	if job.ResultImageURL == nil || !strings.HasPrefix(*job.ResultImageURL, "/") {
		return job
	}
	rewritten := *job
	fullURL := utils.BaseURL(r) + *job.ResultImageURL
	rewritten.ResultImageURL = &fullURL
	return &rewritten
}
