package users

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/dbx"
)

// Table is the remote table name.
const Table = "cleazy_users"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CheckTable(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM cleazy_users LIMIT 0`)
	if err != nil {
		return wrap("check", err)
	}
	defer rows.Close()

	return wrap("check", rows.Err())
}

func (r *PostgresRepository) FindByUsernameFold(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, password FROM cleazy_users
		 WHERE lower(username) = lower($1)
		 LIMIT 1
		 `

	return r.scanOne(ctx, "find_fold", query, username)
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, password FROM cleazy_users
		 WHERE username = $1
		 `

	return r.scanOne(ctx, "find", query, username)
}

func (r *PostgresRepository) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	query :=
		`SELECT id, username, password FROM cleazy_users
		 WHERE username = $1 AND password = $2
		 `

	return r.scanOne(ctx, "find_credentials", query, username, password)
}

func (r *PostgresRepository) scanOne(ctx context.Context, op, query string, args ...any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		return nil, wrap(op, err)
	}
	return user, nil
}

func (r *PostgresRepository) UpdateCredentials(ctx context.Context, id, username, password string) error {
	query :=
		`UPDATE cleazy_users SET username = $1, password = $2
		 WHERE id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, username, password, id)
	if err != nil {
		return wrap("update", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrap("update", err)
	}
	if n == 0 {
		return wrap("update", sql.ErrNoRows)
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, user models.NewUser) (*models.User, error) {
	query :=
		`INSERT INTO cleazy_users (username, password)
		 VALUES ($1, $2)
		 RETURNING id, username, password
		 `

	return r.scanOne(ctx, "create", query, user.Username, user.Password)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.User, error) {
	query :=
		`SELECT id, username, password FROM cleazy_users
		 ORDER BY created_at, username
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap("list", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password); err != nil {
			return nil, wrap("list", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, wrap("list", err)
	}

	return result, nil
}

func (r *PostgresRepository) DeleteByUsername(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cleazy_users WHERE username = $1`, username)
	if err != nil {
		return wrap("delete", err)
	}
	return nil
}
