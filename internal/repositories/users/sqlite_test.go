package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userdesk/userdesk/internal/common"
	"github.com/userdesk/userdesk/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_digest TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *sql.DB, name, email, digest string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (name, email, password_digest) VALUES (?, ?, ?)`,
		name, email, digest)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestCreate_AssignsID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Name: "Ana", Email: "a@x.com", PasswordDigest: "d1"})
	require.NoError(t, err)
	assert.Positive(t, u.ID)

	u2, err := r.Create(ctx, &models.User{Name: "Bea", Email: "b@x.com", PasswordDigest: "d2"})
	require.NoError(t, err)
	assert.Greater(t, u2.ID, u.ID, "ids are store-generated and monotonic")
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Name: "Ana", Email: "a@x.com", PasswordDigest: "d1"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Name: "Bea", Email: "a@x.com", PasswordDigest: "d2"})
	require.ErrorIs(t, err, common.ErrEmailTaken)

	// The rejected attempt must not have mutated anything.
	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ana", all[0].Name)
}

func TestCreate_EmailCaseSensitive(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Name: "Ana", Email: "a@x.com", PasswordDigest: "d1"})
	require.NoError(t, err)

	// No normalization: a different casing is a different email.
	_, err = r.Create(ctx, &models.User{Name: "Bea", Email: "A@x.com", PasswordDigest: "d2"})
	require.NoError(t, err)
}

func TestGetAll_InsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Ana", "a@x.com", "d1")
	seedUser(t, db, "Bea", "b@x.com", "d2")
	seedUser(t, db, "Caio", "c@x.com", "d3")

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	names := []string{all[0].Name, all[1].Name, all[2].Name}
	assert.Equal(t, []string{"Ana", "Bea", "Caio"}, names)
}

func TestGetAll_Empty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	all, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByEmailAndDigest(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id := seedUser(t, db, "Ana", "a@x.com", "d1")

	u, err := r.GetByEmailAndDigest(ctx, "a@x.com", "d1")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Ana", u.Name)

	// Wrong digest, wrong email, and both wrong all look the same.
	_, err = r.GetByEmailAndDigest(ctx, "a@x.com", "dX")
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.GetByEmailAndDigest(ctx, "z@x.com", "d1")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_RewritesRow(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id := seedUser(t, db, "Ana", "a@x.com", "d1")

	err := r.Update(ctx, &models.User{ID: id, Name: "Ana Maria", Email: "am@x.com", PasswordDigest: "d9"})
	require.NoError(t, err)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID, "id must survive updates")
	assert.Equal(t, "Ana Maria", all[0].Name)
	assert.Equal(t, "am@x.com", all[0].Email)
	assert.Equal(t, "d9", all[0].PasswordDigest)
}

func TestUpdate_MissingID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	err := r.Update(context.Background(),
		&models.User{ID: 42, Name: "Nobody", Email: "n@x.com", PasswordDigest: "d"})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_EmailConflict(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Ana", "a@x.com", "d1")
	id := seedUser(t, db, "Bea", "b@x.com", "d2")

	err := r.Update(ctx, &models.User{ID: id, Name: "Bea", Email: "a@x.com", PasswordDigest: "d2"})
	require.ErrorIs(t, err, common.ErrEmailTaken)

	// Keeping your own email is never a conflict.
	err = r.Update(ctx, &models.User{ID: id, Name: "Beatriz", Email: "b@x.com", PasswordDigest: "d2"})
	require.NoError(t, err)
}

func TestUpdateProfile_KeepsDigest(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id := seedUser(t, db, "Ana", "a@x.com", "d1")

	require.NoError(t, r.UpdateProfile(ctx, id, "Ana Maria", "am@x.com"))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ana Maria", all[0].Name)
	assert.Equal(t, "am@x.com", all[0].Email)
	assert.Equal(t, "d1", all[0].PasswordDigest, "digest untouched")
}

func TestUpdateProfile_Errors(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Ana", "a@x.com", "d1")
	id := seedUser(t, db, "Bea", "b@x.com", "d2")

	require.ErrorIs(t, r.UpdateProfile(ctx, id, "Bea", "a@x.com"), common.ErrEmailTaken)
	require.ErrorIs(t, r.UpdateProfile(ctx, 42, "Nobody", "n@x.com"), common.ErrNotFound)
}

func TestDelete_Idempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id := seedUser(t, db, "Ana", "a@x.com", "d1")

	require.NoError(t, r.Delete(ctx, id))
	require.NoError(t, r.Delete(ctx, id), "deleting an absent id is a no-op")
	require.NoError(t, r.Delete(ctx, 9999))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
