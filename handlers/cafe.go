package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cafe-registry-api/models"
	"cafe-registry-api/store"
)

// Handler serves the cafe registry endpoints. It holds the store explicitly
// instead of reaching for a package-level DB handle.
type Handler struct {
	Store *store.CafeStore
}

func NewHandler(s *store.CafeStore) *Handler {
	return &Handler{Store: s}
}

// AddCafeRequest is the form payload for POST /add. Field names mirror the
// public form contract; note "loc" for location. Amenity flags are coerced
// from form strings ("true", "1", "on") to bools by the binding layer.
type AddCafeRequest struct {
	Name         string `form:"name" binding:"required"`
	MapURL       string `form:"map_url" binding:"required"`
	ImgURL       string `form:"img_url" binding:"required"`
	Location     string `form:"loc" binding:"required"`
	Seats        string `form:"seats" binding:"required"`
	HasSockets   bool   `form:"sockets"`
	HasToilet    bool   `form:"toilet"`
	HasWifi      bool   `form:"wifi"`
	CanTakeCalls bool   `form:"calls"`
	CoffeePrice  string `form:"coffee_price"`
}

// GetRandomCafe returns one cafe picked uniformly from the registry.
func (h *Handler) GetRandomCafe(c *gin.Context) {
	cafe, err := h.Store.FetchRandom()
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"Not Found": "Sorry, there are no cafes in the database yet."},
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch a cafe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafe": cafe})
}

// GetAllCafes returns every cafe, sorted by name.
func (h *Handler) GetAllCafes(c *gin.Context) {
	cafes, err := h.Store.FetchAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafes": cafes})
}

// SearchCafes returns the cafes at the location given by the loc query
// parameter; 404 when there are none.
func (h *Handler) SearchCafes(c *gin.Context) {
	loc := c.Query("loc")
	cafes, err := h.Store.FetchByLocation(loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search cafes"})
		return
	}
	if len(cafes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"Not Found": fmt.Sprintf("Sorry, we don't have a cafe at %q.", loc)},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafes": cafes})
}

// AddCafe creates a new cafe from form-encoded fields.
func (h *Handler) AddCafe(c *gin.Context) {
	var req AddCafeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cafe := models.Cafe{
		Name:         req.Name,
		MapURL:       req.MapURL,
		ImgURL:       req.ImgURL,
		Location:     req.Location,
		Seats:        req.Seats,
		HasSockets:   req.HasSockets,
		HasToilet:    req.HasToilet,
		HasWifi:      req.HasWifi,
		CanTakeCalls: req.CanTakeCalls,
		CoffeePrice:  req.CoffeePrice,
	}
	if err := h.Store.Insert(&cafe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add the new cafe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully added the new cafe."},
	})
}

// UpdatePrice overwrites the coffee price of the cafe in the path.
// The new price arrives as a query or form field named new_price.
func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}
	price := c.Query("new_price")
	if price == "" {
		price = c.PostForm("new_price")
	}
	if price == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_price is required"})
		return
	}

	err := h.Store.UpdatePrice(id, price)
	if err == store.ErrNotFound {
		notFoundByID(c)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update the price"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully updated the price."},
	})
}

// DeleteCafe removes the cafe in the path. The API-key check runs as route
// middleware before this handler is reached.
func (h *Handler) DeleteCafe(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}
	err := h.Store.Delete(id)
	if err == store.ErrNotFound {
		notFoundByID(c)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete the cafe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully deleted the cafe from the database."},
	})
}

// cafeID parses the :id path parameter. A non-numeric id gets the same 404
// envelope as a missing record.
func cafeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		notFoundByID(c)
		return 0, false
	}
	return uint(id), true
}

func notFoundByID(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": gin.H{"Not Found": "Sorry a cafe with that id was not found in the database."},
	})
}
