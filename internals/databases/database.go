package database

import (
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"paperbank_backend/internals/configs"
)

var DB *gorm.DB

// ConnectDB membuka file sqlite (dibuat kalau belum ada) dan simpan
// handle global.
func ConnectDB() {
	log.Printf("🔌 Koneksi ke SQLite (%s)...", configs.DBPath)

	db, err := Open(configs.DBPath)
	if err != nil {
		log.Fatalf("❌ Gagal koneksi ke database: %v", err)
	}

	DB = db
	log.Println("✅ Database terkoneksi.")
}

// Open dipakai juga oleh test (path ":memory:" / file sementara).
func Open(path string) (*gorm.DB, error) {
	// busy_timeout: tulis bersamaan antre, tidak langsung SQLITE_BUSY
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// unique violation → gorm.ErrDuplicatedKey (IsUniqueViolation)
		TranslateError: true,
	})
}

// TunePool menyesuaikan pool bawaan database/sql untuk sqlite file tunggal.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("⚠️ Gagal ambil sql.DB: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(1) // satu writer, hindari SQLITE_BUSY
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)
}
