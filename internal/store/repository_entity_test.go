package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

func newTestEntityRepo(t *testing.T) (*entityRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &entityRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestEntityRepository_Upsert_RefreshesShadowInOneTx(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	entity := models.CachedEntity{
		EntityType: "course",
		EntityID:   "c-1",
		Title:      "Algebra basics",
		Body:       "Linear equations and inequalities",
		Data:       []byte(`{"title":"Algebra basics"}`),
		UpdatedAt:  time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO content ").
		WithArgs(entity.EntityType, entity.EntityID, entity.Title, entity.Body,
			[]byte(entity.Data), entity.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM content_fts").
		WithArgs(entity.EntityType, entity.EntityID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO content_fts").
		WithArgs(entity.EntityType, entity.EntityID, entity.Title, entity.Body).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Upsert(context.Background(), entity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityRepository_Upsert_RollsBackOnShadowFailure(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO content ").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM content_fts").
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := repo.Upsert(context.Background(), models.CachedEntity{
		EntityType: "course",
		EntityID:   "c-1",
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM content").
		WithArgs("course", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "course", "missing")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestEntityRepository_Delete_RemovesRowAndShadow(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM content ").
		WithArgs("lesson", "l-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM content_fts").
		WithArgs("lesson", "l-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "lesson", "l-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityRepository_Search_MatchesShadow(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"entity_type", "entity_id", "title", "body", "data", "updated_at"}).
		AddRow("course", "c-1", "Algebra basics", "Linear equations", []byte(`{}`), now)

	mock.ExpectQuery("SELECT(.|\n)+FROM content_fts f(.|\n)+JOIN content c").
		WithArgs("algebra").
		WillReturnRows(rows)

	results, err := repo.Search(context.Background(), models.SearchQuery{Match: "algebra"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c-1", results[0].EntityID)
	assert.Equal(t, "Algebra basics", results[0].Title)
}

func TestEntityRepository_Search_TypeFilterAddsArg(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM content_fts f").
		WithArgs("fractions", "lesson").
		WillReturnRows(sqlmock.NewRows([]string{"entity_type", "entity_id", "title", "body", "data", "updated_at"}))

	results, err := repo.Search(context.Background(), models.SearchQuery{
		Match:      "fractions",
		EntityType: "lesson",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}
