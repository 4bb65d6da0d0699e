package models

// Display forms are the read-oriented wire shapes. They are built by pure
// functions so the visibility rules (no price, no password hash) stay
// testable without a database.

type DisplaySeller struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type DisplayProduct struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Seller      DisplaySeller `json:"seller"`
}

func NewDisplaySeller(s Seller) DisplaySeller {
	return DisplaySeller{
		Username: s.Username,
		Email:    s.Email,
	}
}

// NewDisplayProduct expects p.Seller to be preloaded; a zero Seller yields
// an empty nested form rather than an error.
func NewDisplayProduct(p Product) DisplayProduct {
	return DisplayProduct{
		Name:        p.Name,
		Description: p.Description,
		Seller:      NewDisplaySeller(p.Seller),
	}
}

func NewDisplayProducts(products []Product) []DisplayProduct {
	out := make([]DisplayProduct, 0, len(products))
	for _, p := range products {
		out = append(out, NewDisplayProduct(p))
	}
	return out
}
