package content

import (
	"context"
	"testing"

	"content-sync/feature/content/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormStore_ListContent(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormStore(db)

	rows := sqlmock.NewRows([]string{"id", "page_id", "section", "content_key", "value_en", "value_sv", "value_de", "value_pl", "label", "display_order"})
	rows.AddRow(1, 1, "hero", "hero.title", "Welcome", "Välkommen", "", "", "Title", 1)
	rows.AddRow(2, 1, "steps", "steps.items", `["a","b"]`, "", "", "", "Steps", 2)

	mock.ExpectQuery("SELECT \\* FROM `content`").WillReturnRows(rows)

	got, err := store.ListContent(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hero.title", got[0].ContentKey)
	assert.Equal(t, `["a","b"]`, got[1].ValueEn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_PageBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewGormStore(db)

		rows := sqlmock.NewRows([]string{"id", "slug", "name", "description", "icon", "display_order"}).
			AddRow(3, "about", "About", "", "", 2)
		mock.ExpectQuery("SELECT \\* FROM `pages` WHERE slug = \\?").
			WithArgs("about", 1).
			WillReturnRows(rows)

		page, err := store.PageBySlug(context.Background(), "about")
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, uint(3), page.ID)
	})

	t.Run("absent is nil, not an error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewGormStore(db)

		mock.ExpectQuery("SELECT \\* FROM `pages` WHERE slug = \\?").
			WithArgs("ghost", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}))

		page, err := store.PageBySlug(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, page)
	})
}

func TestGormStore_UpsertContent(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `content` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := store.UpsertContent(context.Background(), []models.ContentRow{{
		PageID:     1,
		Section:    "hero",
		ContentKey: "hero.title",
		ValueEn:    "Welcome",
	}})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpsertContent_EmptyIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormStore(db)

	// No expectations registered: any SQL would fail the test.
	assert.NoError(t, store.UpsertContent(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
