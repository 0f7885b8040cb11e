package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-builder/resume/model"
)

func TestPGRepoCreateStoresNameAndDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := model.New()
	doc.Name = "Jane Doe"
	now := time.Now().UTC()
	d := Draft{ID: "draft-1", Document: doc, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(d.ID, "Jane Doe", sqlmock.AnyArg(), now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetDecodesDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	doc := model.New()
	doc.Name = "Jane"
	doc.Skills = []model.SkillGroup{{ID: "s1", Category: "Lang", Skills: "Go"}}
	raw, err := model.Save(doc)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, document, created_at, updated_at").
		WithArgs("draft-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "document", "created_at", "updated_at"}).
			AddRow("draft-1", string(raw), now, now))

	got, err := (&PGRepo{DB: db}).Get(context.Background(), "draft-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name() != "Jane" || len(got.Document.Skills) != 1 || got.Document.Skills[0].ID != "s1" {
		t.Fatalf("unexpected draft: %+v", got.Document)
	}
}

func TestPGRepoGetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, document").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "document", "created_at", "updated_at"}))

	if _, err := (&PGRepo{DB: db}).Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateAndDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE drafts").
		WithArgs("missing", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM drafts").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), Draft{ID: "missing", UpdatedAt: time.Now()}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListUsesLimitAndOffset(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	raw, _ := model.Save(model.New())
	now := time.Now().UTC()
	mock.ExpectQuery("ORDER BY updated_at DESC").
		WithArgs(maxListLimit, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "document", "created_at", "updated_at"}).
			AddRow("a", string(raw), now, now).
			AddRow("b", string(raw), now, now))

	got, err := (&PGRepo{DB: db}).List(context.Background(), 0, 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("unexpected list: %+v", got)
	}
}
