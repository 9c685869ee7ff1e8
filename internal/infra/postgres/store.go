package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

// Store persists the score sheet and user accounts in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) SaveResult(ctx context.Context, res domain.Result) error {
	createdAt := res.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO score_sheet (user_id, total_score, attempts, created_at) VALUES ($1, $2, $3, $4)`,
		res.UserID, res.Score, res.Attempts, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (s *Store) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx,
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
	rows, err := s.pool.Query(ctx,
		`SELECT attempts, total_score FROM score_sheet WHERE user_id = $1 ORDER BY created_at ASC`,
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
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, pass_hash, first_name, last_name, created_at FROM users WHERE email = $1`,
		email,
	)
	var user auth.StoredUser
	err := row.Scan(&user.ID, &user.Email, &user.PassHash, &user.FirstName, &user.LastName, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *Store) AddUser(ctx context.Context, user *auth.StoredUser) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, pass_hash, first_name, last_name, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PassHash, user.FirstName, user.LastName, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
