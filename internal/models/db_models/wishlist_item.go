package db_models

type WishlistItem struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemType string `json:"itemType"`
	ItemID   int64  `json:"itemId"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
