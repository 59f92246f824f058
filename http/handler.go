package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sagarc03/pawtrait"
	"github.com/sagarc03/pawtrait/allowlist"
)

type Service interface {
	IssueUpload(ctx context.Context, familyID string, req pawtrait.UploadRequest) (pawtrait.UploadGrant, error)
	Record(ctx context.Context, familyID string, req pawtrait.RecordRequest) (pawtrait.PhotoMetadata, error)
	List(ctx context.Context, familyID string) ([]pawtrait.PhotoMetadata, error)
	ContentURL(ctx context.Context, familyID, photoID string) (string, error)
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	AllowList allowlist.Set
	CORS      CORSConfig
}

// Handler provides HTTP handlers for the photo API.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns an http.Handler with all photo routes configured.
// The health route is unauthenticated; everything under /photos goes through
// the family-id middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Get("/health", h.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(FamilyMiddleware(h.config.AllowList))
		r.Post("/photos/upload-url", h.handleUploadURL)
		r.Post("/photos", h.handleRecord)
		r.Get("/photos", h.handleList)
		r.Get("/photos/{photoID}/content", h.handleContent)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	familyID, ok := FamilyFromContext(r.Context())
	if !ok {
		HandleError(w, pawtrait.ErrMissingFamilyID)
		return
	}

	// The body is optional; an absent or empty body means no content-type
	// constraint on the upload.
	var req pawtrait.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	grant, err := h.service.IssueUpload(r.Context(), familyID, req)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, grant)
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	familyID, ok := FamilyFromContext(r.Context())
	if !ok {
		HandleError(w, pawtrait.ErrMissingFamilyID)
		return
	}

	var req pawtrait.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	stored, err := h.service.Record(r.Context(), familyID, req)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusCreated, stored)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	familyID, ok := FamilyFromContext(r.Context())
	if !ok {
		HandleError(w, pawtrait.ErrMissingFamilyID)
		return
	}

	items, err := h.service.List(r.Context(), familyID)
	if err != nil {
		HandleError(w, err)
		return
	}

	if items == nil {
		items = []pawtrait.PhotoMetadata{}
	}

	_ = WriteJSON(w, http.StatusOK, pawtrait.PhotoList{Items: items})
}

func (h *Handler) handleContent(w http.ResponseWriter, r *http.Request) {
	familyID, ok := FamilyFromContext(r.Context())
	if !ok {
		HandleError(w, pawtrait.ErrMissingFamilyID)
		return
	}

	photoID := chi.URLParam(r, "photoID")

	url, err := h.service.ContentURL(r.Context(), familyID, photoID)
	if err != nil {
		HandleError(w, err)
		return
	}

	// The presigned URL is short-lived; keep caches from holding onto the
	// redirect longer than the URL is useful.
	w.Header().Set("Cache-Control", "private, max-age=30")
	w.Header().Set("Location", url)
	w.WriteHeader(http.StatusFound)
}
