// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

var DefaultOpts = Options{DefaultPerPage: 25, MaxPerPage: 200}

type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
	All       bool   // true jika per_page=all
}

// ParseFiber membaca ?page= & ?per_page= (alias ?limit=) + sort dari query.
func ParseFiber(c *fiber.Ctx, defaultSortBy, defaultOrder string, opts Options) Params {
	p := Params{
		Page:      1,
		PerPage:   opts.DefaultPerPage,
		SortBy:    strings.TrimSpace(c.Query("sort_by", defaultSortBy)),
		SortOrder: strings.ToLower(strings.TrimSpace(c.Query("order", defaultOrder))),
	}

	if v, err := strconv.Atoi(strings.TrimSpace(c.Query("page", "1"))); err == nil && v > 0 {
		p.Page = v
	}

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit"))
	}
	if strings.EqualFold(perPageStr, "all") {
		p.All = true
	} else if v, err := strconv.Atoi(perPageStr); err == nil && v > 0 {
		p.PerPage = v
	}
	if opts.MaxPerPage > 0 && p.PerPage > opts.MaxPerPage {
		p.PerPage = opts.MaxPerPage
	}

	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"`
}

func BuildPagination(p Params, total int64, count int) Pagination {
	totalPages := 1
	if p.PerPage > 0 {
		totalPages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
		if totalPages < 1 {
			totalPages = 1
		}
	}
	return Pagination{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
		Count:      count,
	}
}
