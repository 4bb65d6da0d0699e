package models

// Product — products table. Price is an integer in the smallest currency
// unit (cents) and only appears in full-form responses, never in display
// forms.
type Product struct {
	Base
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Price       int    `json:"price" gorm:"not null"`
	SellerID    uint   `json:"seller_id" gorm:"index;not null"`
	Seller      Seller `json:"-"`
}
