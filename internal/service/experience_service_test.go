package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/portfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupExperienceServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:experience-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Experience{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestExperienceServiceListNewestFirst(t *testing.T) {
	gdb, cleanup := setupExperienceServiceTestDB(t)
	defer cleanup()

	base := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	names := []string{"First", "Second", "Third"}
	for i, name := range names {
		exp := db.Experience{
			Model:       gorm.Model{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			Title:       name,
			Description: "d",
		}
		if err := gdb.Create(&exp).Error; err != nil {
			t.Fatalf("seed experience %q: %v", name, err)
		}
	}

	svc := NewExperienceService(gdb)
	list, err := svc.ListNewestFirst()
	if err != nil {
		t.Fatalf("list experiences: %v", err)
	}

	if len(list) != 3 {
		t.Fatalf("expected 3 experiences, got %d", len(list))
	}
	if list[0].Title != "Third" || list[2].Title != "First" {
		t.Fatalf("unexpected order: %v", []string{list[0].Title, list[1].Title, list[2].Title})
	}
}

func TestExperienceServiceCRUD(t *testing.T) {
	gdb, cleanup := setupExperienceServiceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)
	created, err := svc.Create(ExperienceInput{Title: "Research Intern", Description: "Did research."})
	if err != nil {
		t.Fatalf("create experience: %v", err)
	}

	updated, err := svc.Update(created.ID, ExperienceInput{Title: "Research Fellow", Description: "Still research."})
	if err != nil {
		t.Fatalf("update experience: %v", err)
	}
	if updated.Title != "Research Fellow" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete experience: %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, ErrExperienceNotFound) {
		t.Fatalf("expected ErrExperienceNotFound, got %v", err)
	}
}
