package repository

import (
	"github.com/fadilmartias/career-coach/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

// WithTx returns a copy of the repository bound to a transaction.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{tx}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindBySubject(subject string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "auth_subject = ?", subject).Error
	return &user, err
}

func (r *UserRepository) UpdateProfile(user *model.User) error {
	return r.db.Model(user).
		Select("industry", "experience", "bio", "skills").
		Updates(map[string]any{
			"industry":   user.Industry,
			"experience": user.Experience,
			"bio":        user.Bio,
			"skills":     user.Skills,
		}).Error
}
