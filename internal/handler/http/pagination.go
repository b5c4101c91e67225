package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-payment-system/internal/validators"
	"github.com/MKhiriev/go-payment-system/models"
)

// pageRequestFromQuery reads pageNumber and pageSize from the query string.
// Absent values take the defaults. A value that is not an integer is kept
// as zero so that validation reports it together with any other problem.
func pageRequestFromQuery(r *http.Request) models.PageRequest {
	page := models.DefaultPageRequest()
	query := r.URL.Query()

	if raw := query.Get(validators.FieldPageNumber); raw != "" {
		page.PageNumber = parsePageParam(raw)
	}
	if raw := query.Get(validators.FieldPageSize); raw != "" {
		page.PageSize = parsePageParam(raw)
	}

	return page
}

func parsePageParam(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}
