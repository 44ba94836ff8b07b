package repositories

import (
	"testing"

	"realestate_backend/internal/models"
	"realestate_backend/internal/testutil"
	"realestate_backend/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func float(v float64) *float64 { return &v }

func TestApplyHomeFilters_OnlySuppliedConditions(t *testing.T) {
	db := testutil.NewTestDB(t)

	tests := []struct {
		name    string
		filters types.HomeFilters
		where   string
		vars    []interface{}
		absent  []string
	}{
		{
			name:    "no filters",
			filters: types.HomeFilters{},
			where:   "",
		},
		{
			name:    "city and lower bound",
			filters: types.HomeFilters{City: "Toronto", Price: &types.PriceRange{Gte: float(10000)}},
			where:   "WHERE city = ? AND price >= ?",
			vars:    []interface{}{"Toronto", 10000.0},
			absent:  []string{"price <= ?", "property_type"},
		},
		{
			name:    "upper bound and type",
			filters: types.HomeFilters{Price: &types.PriceRange{Lte: float(500000)}, PropertyType: models.PropertyTypeCondo},
			where:   "WHERE price <= ? AND property_type = ?",
			vars:    []interface{}{500000.0, models.PropertyTypeCondo},
			absent:  []string{"city", "price >= ?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var homes []models.Home
			stmt := ApplyHomeFilters(db.Session(&gorm.Session{DryRun: true}).Model(&models.Home{}), tt.filters).
				Find(&homes).Statement

			sql := stmt.SQL.String()
			if tt.where == "" {
				assert.NotContains(t, sql, "WHERE")
				assert.Empty(t, stmt.Vars)
				return
			}
			assert.Contains(t, sql, tt.where)
			assert.Equal(t, tt.vars, stmt.Vars)
			for _, cond := range tt.absent {
				assert.NotContains(t, sql, cond)
			}
		})
	}
}

func TestHomeRepository_FindHomesFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository()

	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)
	cheap := testutil.CreateHome(t, db, realtor.ID, "Toronto", 9000, models.PropertyTypeCondo, "https://img.example.com/a.jpg")
	mid := testutil.CreateHome(t, db, realtor.ID, "Toronto", 15000, models.PropertyTypeResidential,
		"https://img.example.com/b1.jpg", "https://img.example.com/b2.jpg")
	testutil.CreateHome(t, db, realtor.ID, "Ottawa", 20000, models.PropertyTypeResidential)

	homes, err := repo.FindHomes(db, types.HomeFilters{City: "Toronto", Price: &types.PriceRange{Gte: float(10000)}})
	require.NoError(t, err)
	require.Len(t, homes, 1)
	assert.Equal(t, mid.ID, homes[0].ID)
	require.Len(t, homes[0].Images, 2)
	assert.Equal(t, "https://img.example.com/b1.jpg", homes[0].Images[0].URL)

	homes, err = repo.FindHomes(db, types.HomeFilters{PropertyType: models.PropertyTypeCondo})
	require.NoError(t, err)
	require.Len(t, homes, 1)
	assert.Equal(t, cheap.ID, homes[0].ID)

	homes, err = repo.FindHomes(db, types.HomeFilters{})
	require.NoError(t, err)
	assert.Len(t, homes, 3)

	homes, err = repo.FindHomes(db, types.HomeFilters{City: "Montreal"})
	require.NoError(t, err)
	assert.Empty(t, homes)
}

func TestHomeRepository_FindHomeByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository()

	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)
	home := testutil.CreateHome(t, db, realtor.ID, "Toronto", 15000, models.PropertyTypeCondo, "https://img.example.com/a.jpg")

	found, err := repo.FindHomeByID(db, home.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toronto", found.City)
	assert.Equal(t, realtor.Email, found.Realtor.Email)
	assert.Len(t, found.Images, 1)

	_, err = repo.FindHomeByID(db, 999)
	assert.ErrorIs(t, err, ErrHomeNotFound)
}

func TestHomeRepository_UpdateHome(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository()

	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)
	home := testutil.CreateHome(t, db, realtor.ID, "Toronto", 15000, models.PropertyTypeCondo)

	require.NoError(t, repo.UpdateHome(db, home.ID, map[string]interface{}{"price": 17500.0}))

	found, err := repo.FindHomeByID(db, home.ID)
	require.NoError(t, err)
	assert.Equal(t, 17500.0, found.Price)
	assert.Equal(t, "Toronto", found.City)

	assert.ErrorIs(t, repo.UpdateHome(db, 999, map[string]interface{}{"price": 1.0}), ErrHomeNotFound)
}

func TestHomeRepository_ExistsAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository()

	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)
	home := testutil.CreateHome(t, db, realtor.ID, "Toronto", 15000, models.PropertyTypeCondo)

	exists, err := repo.ExistsHome(db, home.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.DeleteHome(db, home.ID))

	exists, err = repo.ExistsHome(db, home.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.ErrorIs(t, repo.DeleteHome(db, home.ID), ErrHomeNotFound)
}

func TestHomeRepository_DeleteWithImagesViolatesForeignKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository()

	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)
	home := testutil.CreateHome(t, db, realtor.ID, "Toronto", 15000, models.PropertyTypeCondo, "https://img.example.com/a.jpg")

	assert.Error(t, repo.DeleteHome(db, home.ID))

	require.NoError(t, NewImageRepository().DeleteByHomeID(db, home.ID))
	assert.NoError(t, repo.DeleteHome(db, home.ID))
}

func TestHomeRepository_FindRealtorByHomeID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository()

	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)
	testutil.CreateUser(t, db, "other", models.UserTypeRealtor)
	home := testutil.CreateHome(t, db, realtor.ID, "Toronto", 15000, models.PropertyTypeCondo)

	found, err := repo.FindRealtorByHomeID(db, home.ID)
	require.NoError(t, err)
	assert.Equal(t, realtor.ID, found.ID)
	assert.Equal(t, realtor.Email, found.Email)

	_, err = repo.FindRealtorByHomeID(db, 999)
	assert.ErrorIs(t, err, ErrHomeNotFound)
}

func TestImageRepository_CreateImagesKeepsOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	images := NewImageRepository()

	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)
	home := testutil.CreateHome(t, db, realtor.ID, "Toronto", 15000, models.PropertyTypeCondo)

	batch := []models.Image{
		{URL: "https://img.example.com/2.jpg", HomeID: home.ID},
		{URL: "https://img.example.com/1.jpg", HomeID: home.ID},
	}
	require.NoError(t, images.CreateImages(db, batch))
	require.NoError(t, images.CreateImages(db, nil))

	found, err := NewHomeRepository().FindHomeByID(db, home.ID)
	require.NoError(t, err)
	require.Len(t, found.Images, 2)
	assert.Equal(t, "https://img.example.com/2.jpg", found.Images[0].URL)
	assert.Equal(t, "https://img.example.com/1.jpg", found.Images[1].URL)
}

func TestMessageRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	messages := NewMessageRepository()

	realtor := testutil.CreateUser(t, db, "rita", models.UserTypeRealtor)
	buyer := testutil.CreateUser(t, db, "bob", models.UserTypeBuyer)
	home := testutil.CreateHome(t, db, realtor.ID, "Toronto", 15000, models.PropertyTypeCondo)

	for _, text := range []string{"first", "second"} {
		msg := &models.Message{Message: text, HomeID: home.ID, RealtorID: realtor.ID, BuyerID: buyer.ID}
		require.NoError(t, messages.CreateMessage(db, msg))
		assert.NotZero(t, msg.ID)
	}

	found, err := messages.FindByHomeID(db, home.ID)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "first", found[0].Message)
	assert.Equal(t, "bob@example.com", found[0].Buyer.Email)

	require.NoError(t, messages.DeleteByHomeID(db, home.ID))
	found, err = messages.FindByHomeID(db, home.ID)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := NewUserRepository()

	user := &models.User{Name: "Bob", Email: "bob@example.com", Phone: "555 555 5555", Password: "hash", UserType: models.UserTypeBuyer}
	require.NoError(t, users.Create(db, user))

	byID, err := users.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", byID.Email)

	byEmail, err := users.FindByEmail(db, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	dup := &models.User{Name: "Bobby", Email: "bob@example.com", Phone: "555 555 5555", Password: "hash", UserType: models.UserTypeBuyer}
	assert.ErrorIs(t, users.Create(db, dup), ErrUserAlreadyExists)

	_, err = users.FindByID(db, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = users.FindByEmail(db, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	count, err := users.CountAll(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
