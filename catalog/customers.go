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

type CustomerRepository interface {
	Repository[models.Customer]
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
}

type GormCustomerRepository struct {
	*GormRepository[models.Customer]
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{GormRepository: NewGormRepository[models.Customer](db, "Customer")}
}

func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&c).Error
	if err != nil {
		return nil, database.Classify(err, "Customer")
	}
	return &c, nil
}

type TokenIssuer interface {
	Issue(customerID uint, email string) (string, error)
}

type RegisterInput struct {
	FullName string `form:"fullName" json:"fullName"`
	Email    string `form:"email" json:"email"`
	Phone    string `form:"phone" json:"phone"`
	Password string `form:"password" json:"password"`
}

type ProfileInput struct {
	FullName *string `form:"fullName" json:"fullName"`
	Email    *string `form:"email" json:"email"`
	Phone    *string `form:"phone" json:"phone"`
	Password *string `form:"password" json:"password"`
}

type Customers struct {
	repo   CustomerRepository
	lc     *Lifecycle[models.Customer, *models.Customer]
	tokens TokenIssuer
}

func NewCustomers(repo CustomerRepository, janitor Discarder, tokens TokenIssuer) *Customers {
	return &Customers{
		repo:   repo,
		tokens: tokens,
		lc: NewLifecycle[models.Customer, *models.Customer](repo, janitor, "Customer",
			DuplicateMessages(map[string]string{
				"email": "Email already exists",
				"phone": "Phone number already exists",
			}),
		),
	}
}

// Register creates a customer with an optional profile image.
func (s *Customers) Register(ctx context.Context, in RegisterInput, uploads storage.Uploads) (*models.Customer, error) {
	return s.lc.Create(ctx, uploads, func(c *models.Customer) error {
		c.FullName = strings.TrimSpace(in.FullName)
		c.Email = strings.TrimSpace(in.Email)
		c.Phone = strings.TrimSpace(in.Phone)
		if c.FullName == "" || c.Email == "" || c.Phone == "" || in.Password == "" {
			return apperror.Validation("All fields are required")
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return apperror.InvalidField("password", "Password must be at most 72 bytes")
		}
		c.PasswordHash = hash
		return nil
	})
}

// Login checks the credentials and issues a token.
func (s *Customers) Login(ctx context.Context, email, password string) (string, *models.Customer, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, apperror.Validation("Email and password required")
	}

	c, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return "", nil, err
	}
	if !auth.CheckPassword(c.PasswordHash, password) {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(c.ID, c.Email)
	if err != nil {
		return "", nil, apperror.Unavailable("Failed to issue token", err)
	}
	return token, c, nil
}

func (s *Customers) Profile(ctx context.Context, id uint) (*models.Customer, error) {
	return s.lc.Find(ctx, id)
}

// UpdateProfile changes the fields sent and replaces the profile image when
// a new one was uploaded.
func (s *Customers) UpdateProfile(ctx context.Context, id uint, in ProfileInput, uploads storage.Uploads) (*models.Customer, error) {
	return s.lc.Update(ctx, id, uploads, func(c *models.Customer) error {
		if v, ok := text(in.FullName); ok && v != "" {
			c.FullName = v
		}
		if v, ok := text(in.Email); ok && v != "" {
			c.Email = v
		}
		if v, ok := text(in.Phone); ok && v != "" {
			c.Phone = v
		}
		if in.Password != nil && *in.Password != "" {
			hash, err := auth.HashPassword(*in.Password)
			if err != nil {
				return apperror.InvalidField("password", "Password must be at most 72 bytes")
			}
			c.PasswordHash = hash
		}
		return nil
	})
}

func (s *Customers) List(ctx context.Context) ([]models.Customer, error) {
	return s.lc.List(ctx)
}

func (s *Customers) Delete(ctx context.Context, id uint) error {
	return s.lc.Delete(ctx, id)
}
