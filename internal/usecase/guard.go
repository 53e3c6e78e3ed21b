package usecase

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"gorm.io/gorm"
)

// requireUser resolves the authenticated subject to a User row. It runs first
// in every operation; nothing user-scoped is read or written before it
// succeeds.
func requireUser(users *repository.UserRepository, subject string) (*model.User, error) {
	if subject == "" {
		return nil, apperr.ErrUnauthorized
	}
	user, err := users.FindBySubject(subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", apperr.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
