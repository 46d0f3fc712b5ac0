package services

import (
	"path/filepath"
	"testing"

	"github.com/kasiam87/eCommerceApp/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Item{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name string, price int64) *entity.Item {
	t.Helper()

	item := &entity.Item{Name: name, Price: price, Description: name + " description"}
	require.NoError(t, db.Create(item).Error)
	return item
}
