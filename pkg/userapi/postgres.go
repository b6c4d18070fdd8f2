package userapi

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/lib/pq"
)

func OpenPostgres(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, libol.NewErr("ping postgres: %s", err)
	}
	return db, nil
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, libol.NewErr("database is required")
	}
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema() error {
	const q = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL DEFAULT '',
	last_name TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT 'USER'
)`
	if _, err := s.db.Exec(q); err != nil {
		return libol.NewErr("ensure users schema: %s", err)
	}
	return nil
}

const selectUser = `SELECT id, username, password, email, first_name, last_name, role FROM users`

func scanUser(row interface{ Scan(...interface{}) error }) (*schema.User, error) {
	u := &schema.User{}
	var role string
	err := row.Scan(&u.Id, &u.Username, &u.Password, &u.Email, &u.FirstName, &u.LastName, &role)
	if err != nil {
		return nil, err
	}
	u.Role = schema.Role(role)
	return u, nil
}

func uniqueErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "email") {
			return ErrEmailTaken
		}
		return ErrUsernameTaken
	}
	return err
}

func (s *PostgresStore) Add(user *schema.User) error {
	const q = `
INSERT INTO users (username, password, email, first_name, last_name, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	err := s.db.QueryRow(q, user.Username, user.Password, user.Email,
		user.FirstName, user.LastName, string(user.Role)).Scan(&user.Id)
	if err != nil {
		return uniqueErr(err)
	}
	return nil
}

func (s *PostgresStore) Get(id int64) (*schema.User, error) {
	u, err := scanUser(s.db.QueryRow(selectUser+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *PostgresStore) GetByName(username string) (*schema.User, error) {
	u, err := scanUser(s.db.QueryRow(selectUser+` WHERE username = $1`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *PostgresStore) List() ([]schema.User, error) {
	rows, err := s.db.Query(selectUser + ` ORDER BY id`)
	if err != nil {
		return nil, libol.NewErr("query users: %s", err)
	}
	defer rows.Close()
	users := make([]schema.User, 0, 32)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) Update(user *schema.User) error {
	const q = `
UPDATE users SET email = $2, first_name = $3, last_name = $4, password = $5
WHERE id = $1`
	res, err := s.db.Exec(q, user.Id, user.Email, user.FirstName, user.LastName, user.Password)
	if err != nil {
		return uniqueErr(err)
	}
	return affected(res)
}

func (s *PostgresStore) Del(id int64) error {
	res, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return libol.NewErr("delete user: %s", err)
	}
	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
