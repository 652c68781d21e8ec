package service

// pageInfo is the navigation metadata of one page of a listing.
type pageInfo struct {
	first       bool
	last        bool
	hasNext     bool
	hasPrevious bool
	totalPages  int
	previous    *int
	next        *int
}

// paginate derives page metadata from the total match count. size must be positive.
func paginate(total int64, index, size int) pageInfo {
	lastPage := int64(index+1)*int64(size) >= total
	firstPage := index == 0

	p := pageInfo{
		first:       firstPage || total == 0,
		last:        lastPage || total == 0,
		hasNext:     !lastPage && total > 0,
		hasPrevious: !firstPage && total > 0,
		totalPages:  int((total + int64(size) - 1) / int64(size)),
	}
	if p.hasPrevious {
		prev := index - 1
		p.previous = &prev
	}
	if p.hasNext {
		next := index + 1
		p.next = &next
	}
	return p
}
