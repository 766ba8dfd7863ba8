package repo

import (
	"Loudspeaker/internal/calc/reactive"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

var (
	ErrNotFound  = errors.New("repo: not found")
	ErrDuplicate = errors.New("repo: already exists")
)

// Driver is a saved loudspeaker parameter set, stored as the raw form
// fields so it re-evaluates exactly as typed.
type Driver struct {
	ID        int             `json:"id"`
	UserID    int             `json:"-"`
	Name      string          `json:"name"`
	Fields    reactive.Fields `json:"fields"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	CreateDriver(ctx context.Context, d *Driver) error
	ListDrivers(ctx context.Context, userID int) ([]Driver, error)
	GetDriver(ctx context.Context, userID, id int) (Driver, error)
	UpdateDriver(ctx context.Context, d *Driver) error
	DeleteDriver(ctx context.Context, userID, id int) error
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       SERIAL PRIMARY KEY,
	login    TEXT NOT NULL UNIQUE,
	email    TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS drivers (
	id         SERIAL PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	fields     JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, name)
);`

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Migrate creates the tables when missing.
func (r *PostgresUserRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, mapErr(err)
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		return 0, "", mapErr(err)
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) CreateDriver(ctx context.Context, d *Driver) error {
	fields, err := json.Marshal(d.Fields)
	if err != nil {
		return err
	}
	query := "INSERT INTO drivers (user_id, name, fields) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at"
	err = r.db.QueryRowContext(ctx, query, d.UserID, d.Name, fields).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return mapErr(err)
}

func (r *PostgresUserRepository) ListDrivers(ctx context.Context, userID int) ([]Driver, error) {
	query := "SELECT id, user_id, name, fields, created_at, updated_at FROM drivers WHERE user_id=$1 ORDER BY name"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := []Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *PostgresUserRepository) GetDriver(ctx context.Context, userID, id int) (Driver, error) {
	query := "SELECT id, user_id, name, fields, created_at, updated_at FROM drivers WHERE user_id=$1 AND id=$2"
	d, err := scanDriver(r.db.QueryRowContext(ctx, query, userID, id))
	return d, mapErr(err)
}

func (r *PostgresUserRepository) UpdateDriver(ctx context.Context, d *Driver) error {
	fields, err := json.Marshal(d.Fields)
	if err != nil {
		return err
	}
	query := "UPDATE drivers SET name=$1, fields=$2, updated_at=now() WHERE user_id=$3 AND id=$4 RETURNING created_at, updated_at"
	err = r.db.QueryRowContext(ctx, query, d.Name, fields, d.UserID, d.ID).Scan(&d.CreatedAt, &d.UpdatedAt)
	return mapErr(err)
}

func (r *PostgresUserRepository) DeleteDriver(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM drivers WHERE user_id=$1 AND id=$2", userID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDriver(s scanner) (Driver, error) {
	var d Driver
	var fields []byte
	if err := s.Scan(&d.ID, &d.UserID, &d.Name, &fields, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return Driver{}, err
	}
	if err := json.Unmarshal(fields, &d.Fields); err != nil {
		return Driver{}, err
	}
	return d, nil
}

// mapErr turns "no rows" and unique violations into package sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}
