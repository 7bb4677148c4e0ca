package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an update targets a row that does not exist.
// Store-level failures are passed through unmodified; callers decide how to
// surface them.
var ErrNotFound = gorm.ErrRecordNotFound

// Entity is the descriptor every model implements next to gorm's TableName:
// the primary-key column name, so the generic helpers can address rows
// without reflection tricks.
type Entity interface {
	PrimaryColumn() string
}

// =============================
// ➕ Create
// =============================
func Create[T any](db *gorm.DB, rec *T) error {
	return db.Create(rec).Error
}

// =============================
// 🔍 Find by ID
// =============================
func FindByID[T Entity](db *gorm.DB, id string) (*T, error) {
	var m T
	if err := db.First(&m, m.PrimaryColumn()+" = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// =============================
// 📄 Find all (filtered, ordered, paginated)
// =============================
func FindAll[T any](db *gorm.DB, opt ListOptions) ([]T, error) {
	var out []T
	q := opt.apply(db)
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Count applies the same scopes as FindAll but ignores limit/offset/order.
func Count[T any](db *gorm.DB, opt ListOptions) (int64, error) {
	var m T
	var total int64
	q := db.Model(&m)
	for _, s := range opt.Scopes {
		q = s(q)
	}
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// =============================
// 🔄 Update named fields
// =============================
func Update[T Entity](db *gorm.DB, id string, fields map[string]any) (*T, error) {
	rec, err := FindByID[T](db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(fields) == 0 {
		return rec, nil
	}
	if err := db.Model(rec).Updates(fields).Error; err != nil {
		return nil, err
	}
	// re-read so autoUpdateTime and store defaults are reflected
	return FindByID[T](db, id)
}

// Save replaces the editable fields of an already-fetched row.
func Save[T any](db *gorm.DB, rec *T) error {
	return db.Save(rec).Error
}

// =============================
// 🗑️ Delete (idempotent)
// =============================
func Delete[T Entity](db *gorm.DB, id string) error {
	var m T
	// zero rows affected is not an error: deleting a missing id is a no-op
	return db.Delete(&m, m.PrimaryColumn()+" = ?", id).Error
}
