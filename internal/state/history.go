package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// GameRecord is one saved game's header row.
type GameRecord struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
	Status    models.GameStatus
	FinalTurn int
}

// CreateGame inserts a new game row and returns its generated ID.
func (db *DB) CreateGame() (string, error) {
	id := uuid.New().String()
	_, err := db.Exec(`
		INSERT INTO games (id, started_at, status) VALUES (?, ?, ?)
	`, id, formatTime(time.Now()), string(models.StatusOngoing))
	if err != nil {
		return "", fmt.Errorf("create game: %w", err)
	}
	return id, nil
}

// FinishGame marks a game over with its terminal status and last turn.
func (db *DB) FinishGame(gameID string, status models.GameStatus, finalTurn int) error {
	result, err := db.Exec(`
		UPDATE games SET ended_at = ?, status = ?, final_turn = ? WHERE id = ?
	`, formatTime(time.Now()), string(status), finalTurn, gameID)
	if err != nil {
		return fmt.Errorf("finish game %s: %w", gameID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish game %s: %w", gameID, err)
	}
	if affected == 0 {
		return fmt.Errorf("finish game %s: not found", gameID)
	}
	return nil
}

// SaveTurn persists one resolved turn. The full record is stored as JSON
// alongside a few queryable columns.
func (db *DB) SaveTurn(gameID string, turn models.Turn) error {
	statsJSON, err := json.Marshal(turn.CityStats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	recordJSON, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("marshal turn record: %w", err)
	}

	accepted := 0
	if turn.Decision.MayorDecision.Accept {
		accepted = 1
	}

	_, err = db.Exec(`
		INSERT INTO turns (game_id, turn_number, proposal_title, accepted, stats_json, record_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, gameID, turn.TurnNumber, turn.Proposal.Title, accepted,
		string(statsJSON), string(recordJSON), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("save turn %d of game %s: %w", turn.TurnNumber, gameID, err)
	}
	return nil
}

// TurnHistory loads every saved turn of a game in play order.
func (db *DB) TurnHistory(gameID string) ([]models.Turn, error) {
	rows, err := db.Query(`
		SELECT record_json FROM turns WHERE game_id = ? ORDER BY turn_number
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("load history of game %s: %w", gameID, err)
	}
	defer rows.Close()

	var history []models.Turn
	for rows.Next() {
		var recordJSON string
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, fmt.Errorf("scan turn row: %w", err)
		}
		var turn models.Turn
		if err := json.Unmarshal([]byte(recordJSON), &turn); err != nil {
			return nil, fmt.Errorf("unmarshal turn record: %w", err)
		}
		history = append(history, turn)
	}
	return history, rows.Err()
}

// Game loads one game header.
func (db *DB) Game(gameID string) (GameRecord, error) {
	row := db.QueryRow(`
		SELECT id, started_at, ended_at, status, final_turn FROM games WHERE id = ?
	`, gameID)
	record, err := scanGame(row)
	if err == sql.ErrNoRows {
		return GameRecord{}, fmt.Errorf("game %s: not found", gameID)
	}
	if err != nil {
		return GameRecord{}, fmt.Errorf("load game %s: %w", gameID, err)
	}
	return record, nil
}

// ListGames returns all saved games, most recent first.
func (db *DB) ListGames() ([]GameRecord, error) {
	rows, err := db.Query(`
		SELECT id, started_at, ended_at, status, final_turn
		FROM games ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		record, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		games = append(games, record)
	}
	return games, rows.Err()
}

// PurgeOldGames deletes finished games older than the specified duration.
// Turn rows cascade. Returns the number of games deleted.
func (db *DB) PurgeOldGames(olderThan time.Duration) (int64, error) {
	cutoff := formatTime(time.Now().Add(-olderThan))

	result, err := db.Exec(`
		DELETE FROM games WHERE started_at < ? AND status != ?
	`, cutoff, string(models.StatusOngoing))
	if err != nil {
		return 0, fmt.Errorf("purge old games: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (GameRecord, error) {
	var record GameRecord
	var startedAt, status string
	var endedAt sql.NullString
	if err := row.Scan(&record.ID, &startedAt, &endedAt, &status, &record.FinalTurn); err != nil {
		return GameRecord{}, err
	}
	record.Status = models.GameStatus(status)
	if t, err := parseTime(startedAt); err == nil {
		record.StartedAt = t
	}
	if endedAt.Valid {
		if t, err := parseTime(endedAt.String); err == nil {
			record.EndedAt = &t
		}
	}
	return record, nil
}
