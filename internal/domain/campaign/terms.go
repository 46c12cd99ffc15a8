package campaign

// Terms is the sponsorship offer for one tier on a campaign
type Terms struct {
	Price     int
	Total     int
	Available int
}

// IsClosed reports whether a tier can no longer apply. A negative price marks a withdrawn offer.
func IsClosed(available, price int) bool {
	return available < 1 || price < 0
}

func (t Terms) IsClosed() bool {
	return IsClosed(t.Available, t.Price)
}
