package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ReportQuery carries the dashboard filter, sort and page parameters
// parsed from the request query string.
type ReportQuery struct {
	Page       int
	PageSize   int
	SortColumn string
	SortDesc   bool
	SearchTerm string
	StartDate  string
	EndDate    string
}

func ParseReportQuery(c *gin.Context) ReportQuery {
	q := ReportQuery{
		Page:       1,
		PageSize:   DashboardPageSize,
		SearchTerm: strings.TrimSpace(c.Query("search")),
		StartDate:  strings.TrimSpace(c.Query("startDate")),
		EndDate:    strings.TrimSpace(c.Query("endDate")),
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		q.Page = page
	}
	if size, err := strconv.Atoi(c.Query("pageSize")); err == nil && size > 0 && size <= 100 {
		q.PageSize = size
	}

	if col := strings.TrimSpace(c.Query("sort")); col != "" && isSortableColumn(col) {
		q.SortColumn = col
	}
	q.SortDesc = strings.EqualFold(c.Query("order"), "desc")

	return q
}

func isSortableColumn(col string) bool {
	switch col {
	case SortColumnDate, SortColumnClient, SortColumnDepartureLocation,
		SortColumnDestination, SortColumnGoods, SortColumnWeightKg,
		SortColumnPricePerKg, SortColumnTotalAriary:
		return true
	}
	return false
}

func NewPaginationMeta(page, pageSize, total int) *PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return &PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// PageBounds clamps a 1-based page onto [lo, hi) slice bounds for a
// list of the given length. A page past the end yields an empty range.
func PageBounds(page, pageSize, length int) (int, int) {
	if page < 1 {
		page = 1
	}
	lo := (page - 1) * pageSize
	if lo >= length {
		return length, length
	}
	hi := lo + pageSize
	if hi > length {
		hi = length
	}
	return lo, hi
}
