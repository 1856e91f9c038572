// FilePath: internal/repository/postgres/postgres.room.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/roomclimate/hub/internal/database"
	"github.com/roomclimate/hub/internal/errors"
	"github.com/roomclimate/hub/internal/models"
)

type RoomRepo struct {
	PostgresBaseRepo
}

func NewRoomRepository(db database.DB) (*RoomRepo, error) {
	repo := &RoomRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *RoomRepo) initializeSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS rooms (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`

	_, err := r.db.GetDB().Exec(query)
	if err != nil {
		return errors.NewDatabaseError("failed to initialize rooms schema", err)
	}
	return nil
}

// Create inserts a new room and fills in the generated id
func (r *RoomRepo) Create(ctx context.Context, room *models.Room) error {
	query := `INSERT INTO rooms (name) VALUES ($1) RETURNING id`

	err := r.db.GetDB().GetContext(ctx, &room.ID, query, room.Name)
	if err != nil {
		return errors.NewDatabaseError("failed to create room", err)
	}
	return nil
}

func (r *RoomRepo) GetName(ctx context.Context, id int64) (string, error) {
	var name string
	query := `SELECT name FROM rooms WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, &name, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", errors.NewNotFoundError("room not found", err)
		}
		return "", errors.NewDatabaseError("failed to get room name", err)
	}
	return name, nil
}
