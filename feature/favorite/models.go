package favorite

import "time"

// Favorite marks a room as favourited by a wallet address. It lives off-chain
// and is never written by the indexer.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    string    `gorm:"column:room_id;size:128;not null;uniqueIndex:idx_favorites_room_user" json:"roomId"`
	UserID    string    `gorm:"column:user_id;size:128;not null;uniqueIndex:idx_favorites_room_user;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name used by Favorite.
func (Favorite) TableName() string {
	return "favorites"
}
