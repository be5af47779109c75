package service

import (
	"errors"
	"fmt"

	"claims-analytics-backend/internal/database/models"
	apperrors "claims-analytics-backend/internal/errors"
	"claims-analytics-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal is the authenticated user resolved to its tenant. Every
// tenant-scoped query is constrained by OrganizationID.
type Principal struct {
	Profile        models.Profile
	OrganizationID uuid.UUID
}

// IdentityService turns the session context set by the auth middleware into
// a Principal.
type IdentityService struct {
	profileRepo repository.ProfileRepositoryInterface
}

// NewIdentityService creates a new identity service
func NewIdentityService(profileRepo repository.ProfileRepositoryInterface) *IdentityService {
	return &IdentityService{profileRepo: profileRepo}
}

// Resolve loads the profile for the authenticated user and resolves its
// organization. Missing session context maps to the authentication error;
// a profile without an organization maps to ErrProfileIncomplete.
func (s *IdentityService) Resolve(c *gin.Context) (*Principal, error) {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil, apperrors.ErrAuthenticationRequired
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}

	if profile.OrganizationID == nil {
		return nil, apperrors.ErrProfileIncomplete
	}

	return &Principal{
		Profile:        *profile,
		OrganizationID: *profile.OrganizationID,
	}, nil
}
