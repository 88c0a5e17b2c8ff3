package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a path parameter value from the request
// context and removes file extensions like ".json" or ".png".
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	if i := strings.LastIndex(rawID, "."); i >= 0 {
		return rawID[:i]
	}
	return rawID
}
