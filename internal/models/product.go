package models

// ProductRef is one entry of the bulk product reference, keyed by product id.
// CategoryID is nil when the vendor listing carried no resolvable category.
type ProductRef struct {
	ProductID  int64  `json:"product_id"`
	CategoryID *int64 `json:"category_id"`
	Name       string `json:"name"`
}

// MenuCategory is one vendor menu category as returned by menu.getCategories.
type MenuCategory struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}
