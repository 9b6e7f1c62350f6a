package mirror

import "time"

// Hotel mirrors an on-chain Hotel object.
type Hotel struct {
	ID              uint      `gorm:"primaryKey" json:"-" bson:"-"`
	ObjectID        string    `gorm:"column:object_id;size:128;uniqueIndex;not null" json:"objectId" bson:"objectId"`
	Name            string    `gorm:"column:name;size:255" json:"name" bson:"name"`
	PhysicalAddress string    `gorm:"column:physical_address;size:512" json:"physicalAddress" bson:"physicalAddress"`
	Owner           string    `gorm:"column:owner;size:128;index" json:"owner" bson:"owner"`
	Treasury        int64     `gorm:"column:treasury" json:"treasury" bson:"treasury"`
	// ImageURL is off-chain metadata set through SetHotelImage, usually with
	// a URL returned by the media upload.
	ImageURL        string    `gorm:"column:image_url;size:1024" json:"imageUrl" bson:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Room mirrors an on-chain Room object.
type Room struct {
	ID          uint      `gorm:"primaryKey" json:"-" bson:"-"`
	ObjectID    string    `gorm:"column:object_id;size:128;uniqueIndex;not null" json:"objectId" bson:"objectId"`
	HotelID     string    `gorm:"column:hotel_id;size:128;index" json:"hotelId" bson:"hotelId"`
	PricePerDay int64     `gorm:"column:price_per_day" json:"pricePerDay" bson:"pricePerDay"`
	IsBooked    bool      `gorm:"column:is_booked" json:"isBooked" bson:"isBooked"`
	ImageURL    string    `gorm:"column:image_url;size:1024" json:"imageUrl" bson:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Reservation mirrors an on-chain Reservation object.
type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"-" bson:"-"`
	ObjectID     string    `gorm:"column:object_id;size:128;uniqueIndex;not null" json:"objectId" bson:"objectId"`
	RoomID       string    `gorm:"column:room_id;size:128;index" json:"roomId" bson:"roomId"`
	HotelID      string    `gorm:"column:hotel_id;size:128" json:"hotelId" bson:"hotelId"`
	GuestAddress string    `gorm:"column:guest_address;size:128;index" json:"guestAddress" bson:"guestAddress"`
	StartDate    time.Time `gorm:"column:start_date" json:"startDate" bson:"startDate"`
	EndDate      time.Time `gorm:"column:end_date" json:"endDate" bson:"endDate"`
	TotalCost    int64     `gorm:"column:total_cost" json:"totalCost" bson:"totalCost"`
	IsActive     bool      `gorm:"column:is_active" json:"isActive" bson:"isActive"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Review mirrors an on-chain Review object.
type Review struct {
	ID            uint      `gorm:"primaryKey" json:"-" bson:"-"`
	ObjectID      string    `gorm:"column:object_id;size:128;uniqueIndex;not null" json:"objectId" bson:"objectId"`
	HotelID       string    `gorm:"column:hotel_id;size:128;index" json:"hotelId" bson:"hotelId"`
	ReservationID string    `gorm:"column:reservation_id;size:128" json:"reservationId" bson:"reservationId"`
	GuestAddress  string    `gorm:"column:guest_address;size:128" json:"guestAddress" bson:"guestAddress"`
	Rating        int       `gorm:"column:rating" json:"rating" bson:"rating"`
	Comment       string    `gorm:"column:comment;type:text" json:"comment" bson:"comment"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (Hotel) TableName() string       { return "hotels" }
func (Room) TableName() string        { return "rooms" }
func (Reservation) TableName() string { return "reservations" }
func (Review) TableName() string      { return "reviews" }

// Models lists every mirror model in migration order.
func Models() []any {
	return []any{&Hotel{}, &Room{}, &Reservation{}, &Review{}}
}
