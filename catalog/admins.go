package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/auth"
	"github.com/upparakash/AspireBrandApi/database"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Repository[models.Admin]
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type GormAdminRepository struct {
	*GormRepository[models.Admin]
}

func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{GormRepository: NewGormRepository[models.Admin](db, "Admin")}
}

func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&a).Error
	if err != nil {
		return nil, database.Classify(err, "Admin")
	}
	return &a, nil
}

type AdminTokenIssuer interface {
	IssueAdmin(adminID uint, email string) (string, error)
}

type AdminRegisterInput struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type Admins struct {
	repo   AdminRepository
	lc     *Lifecycle[models.Admin, *models.Admin]
	tokens AdminTokenIssuer
}

// noObjects is the Discarder of entities without attachments.
type noObjects struct{}

func (noObjects) Discard(context.Context, ...string) []error { return nil }

func NewAdmins(repo AdminRepository, tokens AdminTokenIssuer) *Admins {
	return &Admins{
		repo:   repo,
		tokens: tokens,
		lc: NewLifecycle[models.Admin, *models.Admin](repo, noObjects{}, "Admin",
			DuplicateMessages(map[string]string{"email": "Email already exists"}),
		),
	}
}

// Register creates an admin account with a bcrypt-hashed password.
func (s *Admins) Register(ctx context.Context, in AdminRegisterInput) (*models.Admin, error) {
	return s.lc.Create(ctx, storage.Uploads{}, func(a *models.Admin) error {
		a.Name = strings.TrimSpace(in.Name)
		a.Email = strings.TrimSpace(in.Email)
		if a.Name == "" || a.Email == "" || in.Password == "" {
			return apperror.Validation("All fields are required")
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return apperror.InvalidField("password", "Password must be at most 72 bytes")
		}
		a.PasswordHash = hash
		return nil
	})
}

// Login checks the credentials and issues an admin token.
func (s *Admins) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, apperror.Validation("Email and password required")
	}

	a, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return "", nil, err
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.IssueAdmin(a.ID, a.Email)
	if err != nil {
		return "", nil, apperror.Unavailable("Failed to issue token", err)
	}
	return token, a, nil
}

func (s *Admins) List(ctx context.Context) ([]models.Admin, error) {
	return s.lc.List(ctx)
}
