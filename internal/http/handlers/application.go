package handlers

import (
	"net/http"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/app"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/application"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/middleware"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
}

func NewApplicationHandler(applications *app.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type applyRequest struct {
	CourseID          string   `json:"course_id"`
	PersonalStatement string   `json:"personal_statement"`
	Documents         []string `json:"documents"`
}

type applicationStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	courseID, err := common.ParseUUID(req.CourseID)
	if err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid course_id", err))
		return
	}
	created, err := h.applications.Apply(r.Context(), ident.SubjectID, courseID, req.PersonalStatement, req.Documents)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Eligibility is the advisory pre-check; the authoritative check runs under
// the lock inside Apply.
func (h *ApplicationHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	institutionID, err := common.ParseUUID(r.URL.Query().Get("institution_id"))
	if err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid institution_id", err))
		return
	}
	decision, err := h.applications.CanApply(r.Context(), ident.SubjectID, institutionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, decision)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListByStudent(r.Context(), ident.SubjectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) ListForInstitution(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if ident.InstitutionID == "" {
		response.Error(w, common.NewError(common.CodeForbidden, "no institution bound to account", nil))
		return
	}
	items, err := h.applications.ListByInstitution(r.Context(), ident.InstitutionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	withdrawn, err := h.applications.Withdraw(r.Context(), ident.SubjectID, applicationID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, withdrawn)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if ident.InstitutionID == "" {
		response.Error(w, common.NewError(common.CodeForbidden, "no institution bound to account", nil))
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req applicationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), ident.InstitutionID, applicationID, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
