package dto

import (
	"net/http"
	"strconv"

	"hotelier/shared/constant"
)

// QueryParams carries pagination for list reads. Collections are returned in
// insertion order; a request without page/limit gets the whole collection,
// which is how the dashboard tables consume it.
type QueryParams struct {
	Page  int `json:"page"  validate:"omitempty"`
	Limit int `json:"limit" validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// This will set default values for Page and Limit if they are not provided in
// the request. If `defaultRequest` is false, it will only populate the fields
// that are present in the request.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
