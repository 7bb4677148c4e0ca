package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "yayasanku_backend/internals/databases"
)

type noteModel struct {
	NoteID        string    `gorm:"column:note_id;primaryKey"`
	NoteTitle     string    `gorm:"column:note_title"`
	NoteRank      int       `gorm:"column:note_rank"`
	NoteCreatedAt time.Time `gorm:"column:note_created_at;autoCreateTime"`
	NoteUpdatedAt time.Time `gorm:"column:note_updated_at;autoUpdateTime"`
}

func (noteModel) TableName() string     { return "notes" }
func (noteModel) PrimaryColumn() string { return "note_id" }

func (m *noteModel) BeforeCreate(tx *gorm.DB) error {
	if m.NoteID == "" {
		m.NoteID = uuid.NewString()
	}
	return nil
}

func openNotesDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&noteModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateAndFindByID(t *testing.T) {
	db := openNotesDB(t)

	n := noteModel{NoteTitle: "first"}
	if err := Create(db, &n); err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.NoteID == "" {
		t.Fatal("create did not assign an id")
	}

	got, err := FindByID[noteModel](db, n.NoteID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.NoteTitle != "first" {
		t.Fatalf("title = %q, want %q", got.NoteTitle, "first")
	}
}

func TestFindByIDNotFound(t *testing.T) {
	db := openNotesDB(t)

	_, err := FindByID[noteModel](db, uuid.NewString())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestUpdateNamedFields(t *testing.T) {
	db := openNotesDB(t)

	n := noteModel{NoteTitle: "before", NoteRank: 1}
	if err := Create(db, &n); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := Update[noteModel](db, n.NoteID, map[string]any{"note_title": "after"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.NoteTitle != "after" {
		t.Fatalf("title = %q, want %q", got.NoteTitle, "after")
	}
	if got.NoteRank != 1 {
		t.Fatalf("rank changed by partial update: %d", got.NoteRank)
	}
}

func TestUpdateMissingRow(t *testing.T) {
	db := openNotesDB(t)

	_, err := Update[noteModel](db, uuid.NewString(), map[string]any{"note_title": "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := openNotesDB(t)

	n := noteModel{NoteTitle: "gone"}
	if err := Create(db, &n); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := Delete[noteModel](db, n.NoteID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	// second delete of the same id is a no-op, not an error
	if err := Delete[noteModel](db, n.NoteID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := FindByID[noteModel](db, n.NoteID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("row still present after delete: %v", err)
	}
}

func TestFindAllOrderLimitOffset(t *testing.T) {
	db := openNotesDB(t)

	for i := 1; i <= 5; i++ {
		n := noteModel{NoteTitle: "n", NoteRank: i}
		if err := Create(db, &n); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	rows, err := FindAll[noteModel](db, ListOptions{
		OrderBy: "note_rank DESC",
		Limit:   2,
		Offset:  1,
	})
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].NoteRank != 4 || rows[1].NoteRank != 3 {
		t.Fatalf("ranks = %d,%d, want 4,3", rows[0].NoteRank, rows[1].NoteRank)
	}

	total, err := Count[noteModel](db, ListOptions{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	// count ignores paging
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
}

func TestCountHonorsScopes(t *testing.T) {
	db := openNotesDB(t)

	for i := 1; i <= 4; i++ {
		n := noteModel{NoteTitle: "n", NoteRank: i}
		if err := Create(db, &n); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	scope := func(q *gorm.DB) *gorm.DB { return q.Where("note_rank > ?", 2) }
	total, err := Count[noteModel](db, ListOptions{Scopes: []Scope{scope}})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
}
