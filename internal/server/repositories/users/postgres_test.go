package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/contactvault/internal/common"
	"github.com/dmitrijs2005/contactvault/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*password_hash,\s*name\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+username\s*$`

	rows := sqlmock.NewRows([]string{"username"}).AddRow("test")
	mock.ExpectQuery(q).
		WithArgs("test", "$2a$10$hash", "test").
		WillReturnRows(rows)

	u := &models.User{UserName: "test", PasswordHash: "$2a$10$hash", Name: "test"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.UserName != "test" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users`

	mock.ExpectQuery(q).
		WithArgs("test", "h", "test").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{UserName: "test", PasswordHash: "h", Name: "test"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*password_hash,\s*name,\s*token\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"username", "password_hash", "name", "token"}).
		AddRow("test", "$2a$10$hash", "test", nil)
	mock.ExpectQuery(q).
		WithArgs("test").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "test")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.UserName != "test" || got.Token.Valid {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+username`).
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "absent")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestGetByToken_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*password_hash,\s*name,\s*token\s+FROM\s+users\s+WHERE\s+token\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"username", "password_hash", "name", "token"}).
		AddRow("test", "h", "test", "tok-123")
	mock.ExpectQuery(q).
		WithArgs("tok-123").
		WillReturnRows(rows)

	got, err := repo.GetByToken(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("GetByToken error: %v", err)
	}
	if !got.Token.Valid || got.Token.String != "tok-123" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByToken_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+username`).
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByToken(context.Background(), "unknown")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestCountByUsername(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("test").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	n, err := repo.CountByUsername(context.Background(), "test")
	if err != nil {
		t.Fatalf("CountByUsername error: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1, got %d", n)
	}
}

func TestUpdate_SetsNameAndToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$2,\s*token\s*=\s*\$3\s+WHERE\s+username\s*=\s*\$1\s+RETURNING\s+username,\s*password_hash,\s*name,\s*token\s*$`

	rows := sqlmock.NewRows([]string{"username", "password_hash", "name", "token"}).
		AddRow("test", "h", "renamed", "tok-1")
	mock.ExpectQuery(q).
		WithArgs("test", "renamed", sql.NullString{String: "tok-1", Valid: true}).
		WillReturnRows(rows)

	u := &models.User{
		UserName: "test",
		Name:     "renamed",
		Token:    sql.NullString{String: "tok-1", Valid: true},
	}
	got, err := repo.Update(context.Background(), u)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "renamed" || got.Token.String != "tok-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUpdate_ClearsToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"username", "password_hash", "name", "token"}).
		AddRow("test", "h", "test", nil)
	mock.ExpectQuery(`(?s)^UPDATE\s+users`).
		WithArgs("test", "test", sql.NullString{}).
		WillReturnRows(rows)

	u := &models.User{UserName: "test", Name: "test"}
	got, err := repo.Update(context.Background(), u)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Token.Valid {
		t.Fatalf("token should be cleared, got %+v", got.Token)
	}
}
