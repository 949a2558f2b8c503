package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return common.NewError(common.CodeValidation, "request body is required", nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath pulls the UUID path segment counting from the end:
// /jobs/{id}/applicants has the id at indexFromEnd 1.
func idFromPath(r *http.Request, indexFromEnd int) (common.UUID, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	idx := len(segments) - 1 - indexFromEnd
	if idx < 0 || idx >= len(segments) {
		return "", common.NewError(common.CodeValidation, "invalid path", nil)
	}
	id, err := common.ParseUUID(segments[idx])
	if err != nil {
		return "", common.NewError(common.CodeValidation, "invalid id in path", err)
	}
	return id, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "not authenticated", nil)
}
