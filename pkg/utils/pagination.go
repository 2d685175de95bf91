package utils

// TotalPages returns ceil(total/pageSize), or 0 when there is nothing to show.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// PageOffset converts a 1-indexed page number to a row offset. Pages below 1 are treated as 1.
func PageOffset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
