package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository     *StudentRepository
	AdminRepository       *AdminRepository
	HostelRepository      *HostelRepository
	RoomRepository        *RoomRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		AdminRepository:       NewAdminRepository(db),
		HostelRepository:      NewHostelRepository(db),
		RoomRepository:        NewRoomRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
