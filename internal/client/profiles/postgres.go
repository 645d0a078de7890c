package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmisoft/ecom/internal/client/models"
	"github.com/mmisoft/ecom/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, username, email, phone_number, is_verified, created_at FROM user_profiles
		 WHERE id = $1
		 `

	var (
		username    sql.NullString
		email       sql.NullString
		phoneNumber sql.NullString
		isVerified  sql.NullBool
		createdAt   sql.NullTime
	)

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &username, &email, &phoneNumber, &isVerified, &createdAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Username = username.String
	user.Email = email.String
	user.PhoneNumber = phoneNumber.String
	user.IsVerified = isVerified.Bool
	if createdAt.Valid {
		user.CreatedAt = createdAt.Time
	} else {
		user.CreatedAt = time.Now()
	}

	return user, nil
}

func (r *PostgresRepository) Save(ctx context.Context, user models.User) error {
	query :=
		`INSERT INTO user_profiles (id, username, email, phone_number, is_verified, created_at, last_login_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE
		 SET username = excluded.username,
		     email = excluded.email,
		     phone_number = excluded.phone_number,
		     is_verified = excluded.is_verified,
		     last_login_at = excluded.last_login_at
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PhoneNumber, user.IsVerified,
		user.CreatedAt, time.Now())

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, user models.User) error {
	query :=
		`UPDATE user_profiles
		 SET username = $2, phone_number = $3, is_verified = $4, updated_at = $5
		 WHERE id = $1
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.PhoneNumber, user.IsVerified, time.Now())

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
