package response_models

// WishlistDetailResponse is the denormalized read view of a wishlist item.
// The persisted shape stays purely relational; display fields are resolved
// against the catalog when the list is read.
type WishlistDetailResponse struct {
	ID          int64  `json:"id"`
	ItemType    string `json:"itemType"`
	ItemID      int64  `json:"itemId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
