// file: internals/databases/errors.go
package database

import (
	"errors"

	"gorm.io/gorm"
)

// IsUniqueViolation: pelanggaran unique constraint dari driver yang
// sudah diterjemahkan gorm. Jangan parsing teks error.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsNotFound: baris tidak ditemukan.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
