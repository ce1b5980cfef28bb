package repository

// ListParams carries the uniform list-endpoint inputs: optional free-text
// search, optional exact-match filters, and page/limit pagination.
type ListParams struct {
	Search   string
	Status   string
	Role     string
	Verified *bool
	Read     *bool
	Page     int
	Limit    int
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit); limit is always positive by the time
// a repo sees it.
func TotalPages(total, limit int) int {
	return (total + limit - 1) / limit
}
