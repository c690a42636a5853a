package queries

import (
	"facility-booking/internal/pkg/errs"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

var (
	ErrInvalidPage  = errs.New("page must be a positive integer")
	ErrInvalidLimit = errs.New("limit must be a positive integer")
)

// PageRequest is a normalized 1-based page window.
type PageRequest struct {
	Page  int32
	Limit int32
}

// PageLimits bounds the limit a caller may ask for.
type PageLimits struct {
	Default int32
	Max     int32
}

func DefaultPageLimits() PageLimits {
	return PageLimits{Default: DefaultPageLimit, Max: MaxPageLimit}
}

// NewPageRequest applies defaults to absent values and rejects non-positive ones.
// A limit above the maximum is clamped rather than rejected.
func NewPageRequest(page, limit *int32, limits PageLimits) (PageRequest, error) {
	if limits.Default <= 0 {
		limits.Default = DefaultPageLimit
	}
	if limits.Max <= 0 {
		limits.Max = MaxPageLimit
	}

	req := PageRequest{Page: 1, Limit: limits.Default}
	if page != nil {
		if *page <= 0 {
			return PageRequest{}, errs.Mark(ErrInvalidPage, errs.ErrValidation)
		}
		req.Page = *page
	}
	if limit != nil {
		if *limit <= 0 {
			return PageRequest{}, errs.Mark(ErrInvalidLimit, errs.ErrValidation)
		}
		req.Limit = *limit
	}
	if req.Limit > limits.Max {
		req.Limit = limits.Max
	}
	return req, nil
}

func (p PageRequest) Offset() int32 {
	return (p.Page - 1) * p.Limit
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int32 `json:"page"`
	Limit      int32 `json:"limit"`
	TotalPages int32 `json:"totalPages"`
}

func NewPageMeta(req PageRequest, total int64) PageMeta {
	pages := int32(0)
	if req.Limit > 0 {
		pages = int32((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	return PageMeta{
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: pages,
	}
}

type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func NewPage[T any](data []T, req PageRequest, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Meta: NewPageMeta(req, total)}
}
