package utils

import (
	"fmt"
	"parkguide/database"
	"parkguide/models/training"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestExpireCertifications(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now()

	lapsed := training.Certification{
		GuideID: 1, ModuleID: 1, CertificateNumber: "SFC-EXP00001",
		IssuedDate: now.AddDate(-1, 0, -1), ExpiryDate: now.AddDate(0, 0, -1), Status: "active",
	}
	current := training.Certification{
		GuideID: 1, ModuleID: 2, CertificateNumber: "SFC-EXP00002",
		IssuedDate: now, ExpiryDate: now.AddDate(0, 6, 0), Status: "active",
	}
	alreadyExpired := training.Certification{
		GuideID: 2, ModuleID: 1, CertificateNumber: "SFC-EXP00003",
		IssuedDate: now.AddDate(-2, 0, 0), ExpiryDate: now.AddDate(-1, 0, 0), Status: "expired",
	}
	require.NoError(t, db.Create(&lapsed).Error)
	require.NoError(t, db.Create(&current).Error)
	require.NoError(t, db.Create(&alreadyExpired).Error)

	ExpireCertifications()

	var check training.Certification
	require.NoError(t, db.Where("id = ?", lapsed.ID).First(&check).Error)
	assert.Equal(t, "expired", check.Status)

	check = training.Certification{}
	require.NoError(t, db.Where("id = ?", current.ID).First(&check).Error)
	assert.Equal(t, "active", check.Status)
}

func TestGenerateCertificateNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateCertificateNumber()
		assert.Len(t, number, 12)
		assert.Equal(t, "SFC-", number[:4])
		assert.False(t, seen[number], "certificate numbers must not repeat")
		seen[number] = true
	}
}
