package entity

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is a skip/limit window over a list.
type Page struct {
	Skip  uint64
	Limit uint64
}

// Normalize applies the default limit and caps it.
func (p Page) Normalize() Page {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}

	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	return p
}
