package services

import (
	"testing"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSneakerService_CreateSneaker(t *testing.T) {
	db := newTestDB(t)
	service := NewSneakerService(db)

	seller := createTestUser(t, db, "seller")

	sneaker, err := service.CreateSneaker(seller.Username, SneakerInput{
		Name:      "Jordan 1 Retro",
		Brand:     "Nike",
		Price:     250,
		Size:      "US 11",
		Condition: "new",
		Stock:     2,
		ImageURLs: []string{"/uploads/sneakers/jordan1.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, seller.ID, sneaker.SellerID)
	assert.Equal(t, models.SneakerStatusAvailable, sneaker.Status)
	assert.Equal(t, "seller", sneaker.Seller.Username)

	_, err = service.CreateSneaker("ghost", SneakerInput{Name: "X"})
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSneakerService_GetAvailableSneakers(t *testing.T) {
	db := newTestDB(t)
	service := NewSneakerService(db)

	seller := createTestUser(t, db, "seller")
	createTestSneaker(t, db, seller, 1, 100)
	sold := createTestSneaker(t, db, seller, 0, 100)
	require.NoError(t, db.Model(&sold).Update("status", models.SneakerStatusSold).Error)

	all, err := service.GetAllSneakers()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := service.GetAvailableSneakers()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, models.SneakerStatusAvailable, available[0].Status)
	assert.Equal(t, "seller", available[0].Seller.Username)
}

func TestSneakerService_Search(t *testing.T) {
	db := newTestDB(t)
	service := NewSneakerService(db)

	seller := createTestUser(t, db, "seller")

	names := []struct{ name, brand string }{
		{"Air Max 90", "Nike"},
		{"Samba OG", "Adidas"},
		{"Gel-Kayano", "ASICS"},
	}
	for _, n := range names {
		sneaker := createTestSneaker(t, db, seller, 1, 100)
		require.NoError(t, db.Model(&sneaker).Updates(map[string]interface{}{
			"name":  n.name,
			"brand": n.brand,
		}).Error)
	}

	tests := []struct {
		name    string
		byBrand bool
		query   string
		want    int
	}{
		{"brand_exact", true, "Nike", 1},
		{"brand_lowercase", true, "adidas", 1},
		{"brand_substring", true, "sic", 1},
		{"brand_no_match", true, "Puma", 0},
		{"name_mixed_case", false, "air max", 1},
		{"name_substring", false, "amba", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got []models.Sneaker
				err error
			)
			if tt.byBrand {
				got, err = service.SearchByBrand(tt.query)
			} else {
				got, err = service.SearchByName(tt.query)
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSneakerService_UpdateSneaker(t *testing.T) {
	db := newTestDB(t)
	service := NewSneakerService(db)

	seller := createTestUser(t, db, "seller")
	intruder := createTestUser(t, db, "intruder")
	sneaker := createTestSneaker(t, db, seller, 1, 100)

	input := SneakerInput{
		Name:      "Air Max 95",
		Brand:     "Nike",
		Price:     130,
		Size:      "US 10",
		Condition: "used",
		Stock:     1,
	}

	// Only the owning seller may update
	_, err := service.UpdateSneaker(sneaker.ID, intruder.Username, input)
	require.ErrorIs(t, err, apperrors.ErrNotOwner)

	var unchanged models.Sneaker
	require.NoError(t, db.First(&unchanged, sneaker.ID).Error)
	assert.Equal(t, "Air Max 90", unchanged.Name)

	// Images are kept when the update omits them
	updated, err := service.UpdateSneaker(sneaker.ID, seller.Username, input)
	require.NoError(t, err)
	assert.Equal(t, "Air Max 95", updated.Name)
	assert.Equal(t, 130.0, updated.Price)
	assert.Equal(t, []string{"/uploads/sneakers/airmax90.jpg"}, updated.ImageURLs)

	// And replaced when it supplies them
	input.ImageURLs = []string{"/uploads/sneakers/new.jpg"}
	updated, err = service.UpdateSneaker(sneaker.ID, seller.Username, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/sneakers/new.jpg"}, updated.ImageURLs)
}

func TestSneakerService_DeleteSneaker(t *testing.T) {
	db := newTestDB(t)
	service := NewSneakerService(db)

	seller := createTestUser(t, db, "seller")
	intruder := createTestUser(t, db, "intruder")
	sneaker := createTestSneaker(t, db, seller, 1, 100)

	err := service.DeleteSneaker(sneaker.ID, intruder.Username)
	require.ErrorIs(t, err, apperrors.ErrNotOwner)

	require.NoError(t, service.DeleteSneaker(sneaker.ID, seller.Username))

	_, err = service.GetSneakerByID(sneaker.ID)
	require.ErrorIs(t, err, apperrors.ErrSneakerNotFound)

	err = service.DeleteSneaker(9999, seller.Username)
	require.ErrorIs(t, err, apperrors.ErrSneakerNotFound)
}

func TestSneakerService_GetMySneakers(t *testing.T) {
	db := newTestDB(t)
	service := NewSneakerService(db)

	seller := createTestUser(t, db, "seller")
	other := createTestUser(t, db, "other")
	createTestSneaker(t, db, seller, 1, 100)
	createTestSneaker(t, db, other, 1, 100)

	mine, err := service.GetMySneakers(seller.Username)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, seller.ID, mine[0].SellerID)
}
