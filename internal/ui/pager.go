package ui

// TotalPages is ceiling division; an empty list has zero pages.
func TotalPages(length, pageSize int) int {
	if pageSize <= 0 || length <= 0 {
		return 0
	}
	return (length + pageSize - 1) / pageSize
}

// pageOf returns the window of list visible on the given page. The last page
// may be shorter than pageSize; an out-of-range page is empty.
func pageOf[T any](list []T, page, pageSize int) []T {
	if pageSize <= 0 || page < 0 {
		return nil
	}
	start := page * pageSize
	if start >= len(list) {
		return nil
	}
	end := min(start+pageSize, len(list))
	return list[start:end]
}
