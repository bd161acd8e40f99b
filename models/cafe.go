package models

// Cafe is one row of the cafe registry. Every field except CoffeePrice is
// fixed at creation time; CoffeePrice is the only attribute the API mutates.
type Cafe struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:250;uniqueIndex;not null"`
	MapURL       string `json:"map_url" gorm:"size:500;not null"`
	ImgURL       string `json:"img_url" gorm:"size:500;not null"`
	Location     string `json:"location" gorm:"size:250;not null;index"`
	Seats        string `json:"seats" gorm:"size:250;not null"`
	HasToilet    bool   `json:"has_toilet" gorm:"not null"`
	HasWifi      bool   `json:"has_wifi" gorm:"not null"`
	HasSockets   bool   `json:"has_sockets" gorm:"not null"`
	CanTakeCalls bool   `json:"can_take_calls" gorm:"not null"`
	CoffeePrice  string `json:"coffee_price" gorm:"size:250"`
}
