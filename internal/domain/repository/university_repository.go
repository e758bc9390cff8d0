package repository

import (
	"context"
	"errors"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for university persistence.
var (
	// ErrUniversityNotFound is returned when a university is not found.
	ErrUniversityNotFound = errors.New("university not found")
)

// UniversityRepository defines the interface for tenant-related database operations.
type UniversityRepository interface {
	// CreateUniversity persists a new university.
	CreateUniversity(ctx context.Context, university *entity.University) error

	// FindUniversityByID retrieves a university by its unique ID.
	FindUniversityByID(ctx context.Context, id uuid.UUID) (*entity.University, error)

	// FindUniversityByEmailDomain retrieves a university by the email domain
	// its members register with. The lookup is case-insensitive.
	FindUniversityByEmailDomain(ctx context.Context, domain string) (*entity.University, error)

	// ListUniversities retrieves all universities.
	ListUniversities(ctx context.Context) ([]*entity.University, error)

	// UpdateUniversity persists changes to an existing university.
	UpdateUniversity(ctx context.Context, university *entity.University) error
}
