package store

import (
	"errors"

	"gorm.io/gorm"

	"cafe-registry-api/models"
)

// ErrNotFound is returned when no cafe matches the given id, or when a
// random pick is attempted on an empty table. gorm's own sentinel never
// leaks past this package.
var ErrNotFound = errors.New("cafe not found")

// CafeStore owns all access to the persisted cafe collection.
type CafeStore struct {
	db *gorm.DB
}

func NewCafeStore(db *gorm.DB) *CafeStore {
	return &CafeStore{db: db}
}

// Insert persists cafe and assigns its ID.
func (s *CafeStore) Insert(cafe *models.Cafe) error {
	return s.db.Create(cafe).Error
}

// FetchAll returns every cafe, ordered by name.
func (s *CafeStore) FetchAll() ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := s.db.Order("name").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

// FetchRandom picks one cafe uniformly from the current set.
func (s *CafeStore) FetchRandom() (*models.Cafe, error) {
	var cafe models.Cafe
	err := s.db.Order("RANDOM()").First(&cafe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cafe, nil
}

// FetchByLocation returns all cafes whose location matches loc exactly.
// No match is an empty slice, not an error.
func (s *CafeStore) FetchByLocation(loc string) ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := s.db.Where("location = ?", loc).Order("name").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

// UpdatePrice overwrites only the coffee_price column of the cafe with the
// given id.
func (s *CafeStore) UpdatePrice(id uint, price string) error {
	res := s.db.Model(&models.Cafe{}).Where("id = ?", id).Update("coffee_price", price)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the cafe with the given id.
func (s *CafeStore) Delete(id uint) error {
	res := s.db.Delete(&models.Cafe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
