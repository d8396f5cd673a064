package menu

// Sizes enumerates the pack sizes every menu item is sold in.
var Sizes = []string{"250g", "500g", "1000g"}

// MenuItem is a catalog entry with a fixed price per pack size. A size priced
// at zero is not sold (the original catalog has no 250g Bobbatlu, for
// example).
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price250g   int    `json:"price_250g"`
	Price500g   int    `json:"price_500g"`
	Price1000g  int    `json:"price_1000g"`
	IsAvailable bool   `json:"is_available"`
}

// PriceForSize returns the unit price for a pack size, or 0 when the item is
// not sold in that size.
func (m MenuItem) PriceForSize(size string) int {
	switch size {
	case "250g":
		return m.Price250g
	case "500g":
		return m.Price500g
	case "1000g":
		return m.Price1000g
	default:
		return 0
	}
}

// DefaultCatalog is the sweets-and-snacks catalog the shop opened with; it
// seeds the menu_items table on first run.
func DefaultCatalog() []MenuItem {
	return []MenuItem{
		{ID: "1", Name: "Ragi Laddu", Price1000g: 650, Price500g: 370, Price250g: 185, IsAvailable: true},
		{ID: "2", Name: "Bellam Sunnundalu", Price1000g: 680, Price500g: 390, Price250g: 195, IsAvailable: true},
		{ID: "3", Name: "Nuvvu Laddu", Price1000g: 500, Price500g: 300, Price250g: 150, IsAvailable: true},
		{ID: "4", Name: "Dry Fruit Laddu", Price1000g: 1100, Price500g: 600, Price250g: 300, IsAvailable: true},
		{ID: "5", Name: "Boondi Laddu", Price1000g: 700, Price500g: 390, Price250g: 195, IsAvailable: true},
		{ID: "6", Name: "Bobbatlu", Price1000g: 500, Price500g: 300, Price250g: 0, IsAvailable: true},
		{ID: "7", Name: "Bellam Gavvalu", Price1000g: 550, Price500g: 300, Price250g: 150, IsAvailable: true},
		{ID: "8", Name: "Kaju Mysorepak", Price1000g: 900, Price500g: 500, Price250g: 250, IsAvailable: true},
		{ID: "9", Name: "Butter Murukulu", Price1000g: 550, Price500g: 330, Price250g: 165, IsAvailable: true},
		{ID: "10", Name: "Janthikalu", Price1000g: 550, Price500g: 330, Price250g: 165, IsAvailable: true},
		{ID: "11", Name: "Chekkalu", Price1000g: 500, Price500g: 300, Price250g: 150, IsAvailable: true},
		{ID: "12", Name: "Hot Boondi", Price1000g: 450, Price500g: 270, Price250g: 135, IsAvailable: true},
		{ID: "13", Name: "Mixture", Price1000g: 500, Price500g: 300, Price250g: 150, IsAvailable: true},
		{ID: "14", Name: "Flax Seed Laddu", Price1000g: 850, Price500g: 450, Price250g: 225, IsAvailable: true},
	}
}
