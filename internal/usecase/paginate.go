package usecase

// TotalPages returns ceil(length/size); zero pages for an empty sequence.
func TotalPages(length, size int) int {
	if size <= 0 || length <= 0 {
		return 0
	}
	return (length + size - 1) / size
}

// ClampPage clamps a 1-indexed page number into [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices items into the requested fixed-size page. The page number
// is clamped before slicing, so the result is never out of range; it is empty
// only when items is empty. It returns the page slice, the clamped page
// number and totalPages.
func Paginate[T any](items []T, page, size int) ([]T, int, int) {
	total := TotalPages(len(items), size)
	page = ClampPage(page, total)
	if total == 0 {
		return nil, page, 0
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, total
}

// NextPage advances one page without wrapping past the last.
func NextPage(page, totalPages int) int {
	return ClampPage(page+1, totalPages)
}

// PrevPage steps back one page without wrapping below the first.
func PrevPage(page, totalPages int) int {
	return ClampPage(page-1, totalPages)
}
