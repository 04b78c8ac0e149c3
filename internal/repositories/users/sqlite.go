package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/userdesk/userdesk/internal/common"
	"github.com/userdesk/userdesk/internal/dbx"
	"github.com/userdesk/userdesk/internal/models"
)

// SQLiteRepository implements Repository using a dbx.DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// isUniqueViolation reports whether err is the driver's UNIQUE constraint
// failure. The index is the sole arbiter for duplicate emails; there is no
// pre-check query to race against.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (name, email, password_digest) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.PasswordDigest)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}
	user.ID = id
	return user, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, name, email, password_digest FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordDigest); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByEmailAndDigest(ctx context.Context, email, digest string) (*models.User, error) {
	query := `SELECT id, name, email, password_digest FROM users WHERE email = ? AND password_digest = ?`

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email, digest).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordDigest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select user by credentials: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET name = ?, email = ?, password_digest = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.PasswordDigest, user.ID)
	return r.checkUpdateResult(res, err)
}

func (r *SQLiteRepository) UpdateProfile(ctx context.Context, id int64, name, email string) error {
	query := `UPDATE users SET name = ?, email = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, name, email, id)
	return r.checkUpdateResult(res, err)
}

func (r *SQLiteRepository) checkUpdateResult(res sql.Result, err error) error {
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = ?`

	// Zero rows affected is fine: delete is idempotent.
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
