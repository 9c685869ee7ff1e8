package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

// Store is the local persistence tier: the score sheet plus registered
// users, in a single sqlite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and prepares the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	store, err := NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func NewStore(db *sql.DB) (*Store, error) {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	if err := createTables(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			pass_hash BLOB NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS score_sheet (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			total_score INTEGER NOT NULL,
			attempts TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

func (s *Store) SaveResult(ctx context.Context, res domain.Result) error {
	createdAt := res.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO score_sheet (user_id, total_score, attempts, created_at) VALUES (?, ?, ?, ?)`,
		res.UserID, res.Score, res.Attempts, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (s *Store) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sc.user_id, COALESCE(u.first_name, 'Unknown'), COALESCE(u.last_name, ''), sc.total_score, sc.attempts
		 FROM score_sheet sc
		 LEFT JOIN users u ON u.id = sc.user_id
		 ORDER BY sc.total_score DESC, sc.created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.FirstName, &entry.LastName, &entry.TotalScore, &entry.Attempts); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) UserAttempts(ctx context.Context, userID string) ([]domain.AttemptRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT attempts, total_score FROM score_sheet WHERE user_id = ? ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var records []domain.AttemptRecord
	for rows.Next() {
		var rec domain.AttemptRecord
		if err := rows.Scan(&rec.Attempts, &rec.TotalScore); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*auth.StoredUser, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, pass_hash, first_name, last_name, created_at FROM users WHERE email = ?`,
		email,
	)
	var user auth.StoredUser
	err := row.Scan(&user.ID, &user.Email, &user.PassHash, &user.FirstName, &user.LastName, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *Store) AddUser(ctx context.Context, user *auth.StoredUser) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, pass_hash, first_name, last_name, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.PassHash, user.FirstName, user.LastName, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
