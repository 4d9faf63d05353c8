package dto

// TotalPages returns ceil(total/limit).
func TotalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

// Window returns the [start, end) slice bounds for the given page of a
// collection of total elements. Pages past the end yield an empty window.
func Window(total, page, limit int) (int, int) {
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
