package models

// Item represents a purchasable emoji cosmetic
type Item struct {
	ID    string
	Name  string
	Emoji string
	Price int64
}

// catalog is the fixed cosmetic item list. Ownership lives in the database;
// the catalog itself is static and looked up by ID.
var catalog = []Item{
	{ID: "crown", Name: "Crown", Emoji: "👑", Price: 500},
	{ID: "rocket", Name: "Rocket", Emoji: "🚀", Price: 300},
	{ID: "clover", Name: "Lucky Clover", Emoji: "🍀", Price: 250},
	{ID: "fire", Name: "Fire", Emoji: "🔥", Price: 200},
	{ID: "diamond", Name: "Diamond", Emoji: "💠", Price: 150},
	{ID: "star", Name: "Star", Emoji: "⭐", Price: 100},
}

// Catalog returns all purchasable items in display order
func Catalog() []Item {
	items := make([]Item, len(catalog))
	copy(items, catalog)
	return items
}

// ItemByID looks up a catalog item, returning false if the ID is unknown
func ItemByID(id string) (Item, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
