package utils

import (
	"doctors-portal-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body into dst and maps failures to a 400 CustomError.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
