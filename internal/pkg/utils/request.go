package utils

import (
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

// BuildProductFilterRequest reads category, search, page and limit from the
// query string. Unknown or "all" categories are treated as no filter.
func BuildProductFilterRequest(r *http.Request) *requests.ProductFilter {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page <= 0 {
		page = constvars.AppDefaultPage
	}

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit <= 0 {
		limit = constvars.AppDefaultProductPageSize
	}
	if limit > constvars.AppMaxProductPageSize {
		limit = constvars.AppMaxProductPageSize
	}

	category := strings.TrimSpace(query.Get("category"))
	if strings.EqualFold(category, "all") {
		category = ""
	}

	return &requests.ProductFilter{
		Category: category,
		Search:   strings.TrimSpace(query.Get("search")),
		Page:     page,
		Limit:    limit,
	}
}

// BuildClinicVisitRequestFilter reads the optional requestType and status
// query params.
func BuildClinicVisitRequestFilter(r *http.Request) *requests.ClinicVisitRequestFilter {
	query := r.URL.Query()
	return &requests.ClinicVisitRequestFilter{
		RequestType: strings.TrimSpace(query.Get("requestType")),
		Status:      strings.ToLower(strings.TrimSpace(query.Get("status"))),
	}
}

// BuildChatMessageFilter reads page and limit from the query string. Bounds
// are applied by the chat usecase.
func BuildChatMessageFilter(r *http.Request) *requests.ChatMessageFilter {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	return &requests.ChatMessageFilter{Page: page, Limit: limit}
}
