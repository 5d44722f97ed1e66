package postgres

import (
	"database/sql"

	"rentmarket-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.RentalItemRepository
	repository.RentalRequestRepository
	repository.RentalTypeRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		RentalItemRepository:    NewRentalItemRepository(db),
		RentalRequestRepository: NewRentalRequestRepository(db),
		RentalTypeRepository:    NewRentalTypeRepository(db),
	}
}
