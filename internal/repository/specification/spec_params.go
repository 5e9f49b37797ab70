package specification

import (
	"fmt"
	"sort"
	"strings"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 6
	MaxPageSize       = 50
)

// SpecParams carries the paging, sorting and search options of a listing
// request. Page sizes above MaxPageSize are clamped.
type SpecParams struct {
	pageNumber *int
	pageSize   *int
	sort       string
	search     *string
}

func (p *SpecParams) PageNumber() int {
	if p.pageNumber == nil {
		return DefaultPageNumber
	}
	return *p.pageNumber
}

func (p *SpecParams) SetPageNumber(n int) {
	p.pageNumber = &n
}

func (p *SpecParams) PageSize() int {
	if p.pageSize == nil {
		return DefaultPageSize
	}
	return *p.pageSize
}

func (p *SpecParams) SetPageSize(n int) {
	if n > MaxPageSize {
		n = MaxPageSize
	}
	p.pageSize = &n
}

func (p *SpecParams) Sort() string {
	return p.sort
}

func (p *SpecParams) SetSort(key string) {
	p.sort = key
}

// Search is the lower-cased search term, or "" when unset.
func (p *SpecParams) Search() string {
	if p.search == nil {
		return ""
	}
	return *p.search
}

func (p *SpecParams) SetSearch(search string) {
	lowered := strings.ToLower(search)
	p.search = &lowered
}

// Skip is the number of rows before the current page.
func (p *SpecParams) Skip() int {
	return p.PageSize() * (p.PageNumber() - 1)
}

func (p *SpecParams) cacheKey() string {
	return fmt.Sprintf("page=%d|size=%d|sort=%s|search=%s", p.PageNumber(), p.PageSize(), p.sort, p.Search())
}

// ProductSpecParams extends SpecParams with brand and type filters.
type ProductSpecParams struct {
	SpecParams
	brands []string
	types  []string
}

func (p *ProductSpecParams) Brands() []string {
	return append([]string(nil), p.brands...)
}

// SetBrands accepts values that may each hold a comma-separated list.
func (p *ProductSpecParams) SetBrands(values ...string) {
	p.brands = splitList(values)
}

func (p *ProductSpecParams) Types() []string {
	return append([]string(nil), p.types...)
}

// SetTypes accepts values that may each hold a comma-separated list.
func (p *ProductSpecParams) SetTypes(values ...string) {
	p.types = splitList(values)
}

// CacheKey identifies the page the params select.
func (p *ProductSpecParams) CacheKey() string {
	brands := append([]string(nil), p.brands...)
	types := append([]string(nil), p.types...)
	sort.Strings(brands)
	sort.Strings(types)
	return fmt.Sprintf("products|%s|brands=%s|types=%s", p.cacheKey(), strings.Join(brands, ","), strings.Join(types, ","))
}

// OrderSpecParams extends SpecParams with a status filter.
type OrderSpecParams struct {
	SpecParams
	status string
}

func (p *OrderSpecParams) Status() string {
	return p.status
}

func (p *OrderSpecParams) SetStatus(status string) {
	p.status = strings.ToLower(strings.TrimSpace(status))
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
