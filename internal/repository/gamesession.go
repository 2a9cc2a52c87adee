package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// GameSession mirrors the game_session table. State is the gob blob
// of the full game state; the summary columns exist for listings and
// leaderboards and are updated alongside it.
type GameSession struct {
	GameSessionID int64
	PlayerID      *int64
	Seed          int64
	Difficulty    string
	Daily         bool
	Errors        int32
	Dead          bool
	Won           bool
	State         []byte
	StartedAt     time.Time
	EndedAt       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateSessionParams struct {
	PlayerID   *int64
	Seed       int64
	Difficulty string
	Daily      bool
	State      []byte
}

func (q *Queries) CreateSession(
	ctx context.Context, params CreateSessionParams,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, seed, difficulty, daily, state
		)
		VALUES (
			@player_id, @seed, @difficulty, @daily, @state
		)
		RETURNING *;`,
		pgx.NamedArgs{
			"player_id":  params.PlayerID,
			"seed":       params.Seed,
			"difficulty": params.Difficulty,
			"daily":      params.Daily,
			"state":      params.State,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) GetSession(ctx context.Context, gameSessionID int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionID,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateSessionParams struct {
	GameSessionID int64
	State         []byte
	Errors        int32
	Dead          bool
	Won           bool
	EndedAt       *time.Time
}

func (q *Queries) UpdateSession(ctx context.Context, params UpdateSessionParams) error {
	_, err := q.db.Exec(
		ctx,
		`UPDATE game_session
		SET state      = @state,
			errors     = @errors,
			dead       = @dead,
			won        = @won,
			ended_at   = @ended_at,
			updated_at = now()
		WHERE game_session_id = @game_session_id;`,
		pgx.NamedArgs{
			"game_session_id": params.GameSessionID,
			"state":           params.State,
			"errors":          params.Errors,
			"dead":            params.Dead,
			"won":             params.Won,
			"ended_at":        params.EndedAt,
		},
	)
	return err
}
