package handlers

import (
	"net/http"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/app"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/student"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/middleware"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/response"
)

type ProfileHandler struct {
	profiles *app.ProfileService
}

func NewProfileHandler(profiles *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type profileRequest struct {
	FullName     string                `json:"full_name"`
	Phone        string                `json:"phone"`
	Certificates []student.Certificate `json:"certificates"`
	Experience   []student.Employment  `json:"experience"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	profile, err := h.profiles.Get(r.Context(), ident.SubjectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	saved, err := h.profiles.Upsert(r.Context(), student.Profile{
		UserID:       ident.SubjectID,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Certificates: req.Certificates,
		Experience:   req.Experience,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, saved)
}
