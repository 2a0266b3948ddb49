package usecase

import (
	"math"

	"github.com/mikiasgoitom/Vendora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// normalizePagination clamps a requested page window to sane bounds.
func normalizePagination(page, pageSize int, config usecasecontract.IConfigProvider) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > config.GetMaxPageSize() {
		pageSize = config.GetDefaultPageSize()
	}
	return page, pageSize
}

// paginationMeta builds the page descriptor for a listing response.
func paginationMeta(page, pageSize int, total int64) dto.PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return dto.PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
