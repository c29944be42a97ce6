package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/pebbles-game/internal/model"
	"github.com/mcoot/pebbles-game/internal/storage"
)

// The game lives in a single row pinned to id 1
const (
	createStateTable = `CREATE TABLE IF NOT EXISTS game_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		pebbles_count INTEGER NOT NULL,
		max_pebbles_per_turn INTEGER NOT NULL,
		pebbles_remaining INTEGER NOT NULL,
		difficulty TEXT NOT NULL,
		first_player TEXT NOT NULL,
		current_player TEXT NOT NULL,
		winner TEXT,
		started_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`

	upsertState = `INSERT INTO game_state (
		id, pebbles_count, max_pebbles_per_turn, pebbles_remaining, difficulty,
		first_player, current_player, winner, started_at, updated_at
	) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		pebbles_count = excluded.pebbles_count,
		max_pebbles_per_turn = excluded.max_pebbles_per_turn,
		pebbles_remaining = excluded.pebbles_remaining,
		difficulty = excluded.difficulty,
		first_player = excluded.first_player,
		current_player = excluded.current_player,
		winner = excluded.winner,
		started_at = excluded.started_at,
		updated_at = excluded.updated_at`

	selectState = `SELECT pebbles_count, max_pebbles_per_turn, pebbles_remaining, difficulty,
		first_player, current_player, winner, started_at, updated_at
	FROM game_state WHERE id = 1`
)

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the database at path and runs migrations
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; invocations are serialized anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Storage{db: db}
	if err := s.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the schema if it does not exist
func (s *Storage) Migrate() error {
	if _, err := s.db.Exec(createStateTable); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveState(ctx context.Context, state *model.GameState) error {
	var winner sql.NullString
	if state.Winner != nil {
		winner = sql.NullString{String: string(*state.Winner), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, upsertState,
		state.PebblesCount,
		state.MaxPebblesPerTurn,
		state.PebblesRemaining,
		string(state.Difficulty),
		string(state.FirstPlayer),
		string(state.CurrentPlayer),
		winner,
		state.StartedAt.UTC().Format(time.RFC3339Nano),
		state.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

func (s *Storage) GetState(ctx context.Context) (*model.GameState, error) {
	var (
		state                model.GameState
		difficulty           string
		firstPlayer          string
		currentPlayer        string
		winner               sql.NullString
		startedAt, updatedAt string
	)

	err := s.db.QueryRowContext(ctx, selectState).Scan(
		&state.PebblesCount,
		&state.MaxPebblesPerTurn,
		&state.PebblesRemaining,
		&difficulty,
		&firstPlayer,
		&currentPlayer,
		&winner,
		&startedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrGameNotInitialized
		}
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	state.Difficulty = model.DifficultyLevel(difficulty)
	state.FirstPlayer = model.Player(firstPlayer)
	state.CurrentPlayer = model.Player(currentPlayer)
	if winner.Valid {
		state.SetWinner(model.Player(winner.String))
	}
	if state.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("corrupt started_at: %w", err)
	}
	if state.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("corrupt updated_at: %w", err)
	}
	return &state, nil
}
