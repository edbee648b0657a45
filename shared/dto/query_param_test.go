package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"hotelier/shared/constant"
	"hotelier/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":  "2",
				"limit": "20",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:  2,
				Limit: 20,
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:  0,
				Limit: 0,
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative values ignored",
			queryParams: map[string]string{
				"page":  "-1",
				"limit": "-10",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:  0,
				Limit: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params.Page != tt.expected.Page {
				t.Errorf("expected page to be %d, got %d", tt.expected.Page, params.Page)
			}
			if params.Limit != tt.expected.Limit {
				t.Errorf("expected limit to be %d, got %d", tt.expected.Limit, params.Limit)
			}
		})
	}
}
