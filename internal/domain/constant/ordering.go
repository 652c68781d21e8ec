package constant

// OrderBy selects the column todo listings are sorted by.
type OrderBy string

const (
	OrderByCreated  OrderBy = "created"
	OrderByTitle    OrderBy = "title"
	OrderByPriority OrderBy = "priority"
	OrderByState    OrderBy = "state"
)

// Column returns the database column backing the sort key.
func (o OrderBy) Column() string {
	switch o {
	case OrderByCreated:
		return "created"
	case OrderByPriority:
		return "priority"
	case OrderByState:
		return "state"
	default:
		return "title"
	}
}

// Valid reports whether o is a known sort key.
func (o OrderBy) Valid() bool {
	switch o {
	case OrderByCreated, OrderByTitle, OrderByPriority, OrderByState:
		return true
	}
	return false
}

// Order is the sort direction.
type Order string

const (
	OrderAscending  Order = "asc"
	OrderDescending Order = "desc"
)

// Valid reports whether o is a known direction.
func (o Order) Valid() bool {
	return o == OrderAscending || o == OrderDescending
}
