package port

import (
	"context"

	"github.com/google/uuid"

	"designdesk/internal/domain"
)

// UserRepository is the persistence contract for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
}

// LeadRepository is the persistence contract for leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error)
	List(ctx context.Context, status *domain.LeadStatus, offset, limit int) ([]domain.Lead, int, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientRepository is the persistence contract for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectRepository is the persistence contract for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Project, int, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}
