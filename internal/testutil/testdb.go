package testutil

import (
	"fmt"
	"testing"
	"time"

	"realestate_backend/internal/auth"
	"realestate_backend/internal/database"
	"realestate_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	TokenKey         = "test-token-key"
	ProductKeySecret = "test-product-secret"
	Password         = "secret123"
)

// NewTestDB opens a migrated in-memory SQLite database with foreign keys on.
// The pool is capped at one connection, because every new connection to
// ":memory:" would see an empty database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// NewCredentials returns credentials with fixed secrets and the cheapest
// bcrypt cost.
func NewCredentials() *auth.Credentials {
	return auth.NewCredentials(TokenKey, ProductKeySecret, time.Hour).WithBcryptCost(bcrypt.MinCost)
}

// CreateUser stores a user whose password is Password.
func CreateUser(t testing.TB, db *gorm.DB, name string, userType models.UserType) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Phone:    "555 555 5555",
		Password: string(hash),
		UserType: userType,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

// CreateHome stores a listing owned by realtorID with one image per url.
func CreateHome(t testing.TB, db *gorm.DB, realtorID uint, city string, price float64, propertyType models.PropertyType, urls ...string) *models.Home {
	t.Helper()

	home := &models.Home{
		Address:           fmt.Sprintf("%d Main St", int(price)),
		City:              city,
		Price:             price,
		PropertyType:      propertyType,
		NumberOfBedrooms:  3,
		NumberOfBathrooms: 2,
		LandSize:          450,
		RealtorID:         realtorID,
	}
	if err := db.Omit("Images", "Realtor").Create(home).Error; err != nil {
		t.Fatalf("failed to create home: %v", err)
	}

	for _, url := range urls {
		image := models.Image{URL: url, HomeID: home.ID}
		if err := db.Create(&image).Error; err != nil {
			t.Fatalf("failed to create image: %v", err)
		}
		home.Images = append(home.Images, image)
	}
	return home
}

// Token signs a token for user with NewCredentials.
func Token(t testing.TB, user *models.User) string {
	t.Helper()

	token, err := NewCredentials().GenerateToken(user.ID, user.Name)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}
