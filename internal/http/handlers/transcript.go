package handlers

import (
	"net/http"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/app"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/middleware"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/response"
)

type TranscriptHandler struct {
	transcripts *app.TranscriptService
}

func NewTranscriptHandler(transcripts *app.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcripts: transcripts}
}

type transcriptRequest struct {
	GPA          float64  `json:"gpa"`
	Certificates []string `json:"certificates"`
}

func (h *TranscriptHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req transcriptRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	uploaded, err := h.transcripts.Upload(r.Context(), ident.SubjectID, req.GPA, req.Certificates)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, uploaded)
}

func (h *TranscriptHandler) Latest(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	latest, err := h.transcripts.Latest(r.Context(), ident.SubjectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, latest)
}

func (h *TranscriptHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.transcripts.ListByStudent(r.Context(), ident.SubjectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
