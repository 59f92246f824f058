package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/sagarc03/pawtrait/allowlist"
)

// FamilyHeader is the request header carrying the caller's family identifier.
const FamilyHeader = "x-family-id"

type familyIDKey struct{}

// FamilyMiddleware extracts and validates the family identifier from the
// request headers. A missing or empty header fails with 400; an id not in a
// non-empty allow-list fails with 403. The validated id is stored in the
// request context for handlers to read via FamilyFromContext.
func FamilyMiddleware(allow allowlist.Set) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			familyID := strings.TrimSpace(r.Header.Get(FamilyHeader))

			if familyID == "" {
				WriteError(w, http.StatusBadRequest, "missing_family_id", "Missing x-family-id header")
				return
			}

			if !allow.Allowed(familyID) {
				WriteError(w, http.StatusForbidden, "family_not_allowed", "Family is not allow-listed")
				return
			}

			ctx := context.WithValue(r.Context(), familyIDKey{}, familyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FamilyFromContext retrieves the validated family identifier stored by
// FamilyMiddleware.
func FamilyFromContext(ctx context.Context) (string, bool) {
	familyID, ok := ctx.Value(familyIDKey{}).(string)
	return familyID, ok && familyID != ""
}
