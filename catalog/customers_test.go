package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/auth"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
	"github.com/upparakash/AspireBrandApi/storage/storagetest"
)

type stubTokens struct {
	err error
}

func (s stubTokens) Issue(id uint, email string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + email, nil
}

func (s stubTokens) IssueAdmin(id uint, email string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "admin-token-for-" + email, nil
}

func newCustomers(tokens TokenIssuer) (*Customers, memCustomers, *storagetest.MemStore) {
	store := storagetest.New()
	repo := memCustomers{newMemRepo[models.Customer, *models.Customer](func(c *models.Customer, id uint) { c.ID = id })}
	return NewCustomers(repo, store.Janitor(), tokens), repo, store
}

func TestCustomerRegister(t *testing.T) {
	ctx := context.Background()
	in := RegisterInput{FullName: "Asha Rao", Email: "asha@example.com", Phone: "9876543210", Password: "s3cret!"}

	t.Run("hashes the password", func(t *testing.T) {
		customers, _, store := newCustomers(stubTokens{})
		uploads := uploaded(store, storage.FolderCustomers, "profile")

		c, err := customers.Register(ctx, in, uploads)

		require.NoError(t, err)
		assert.NotEqual(t, in.Password, c.PasswordHash)
		assert.True(t, auth.CheckPassword(c.PasswordHash, in.Password))
		assert.Equal(t, uploads["profile"].URL, c.Profile)
	})

	t.Run("profile image is optional", func(t *testing.T) {
		customers, _, _ := newCustomers(stubTokens{})
		c, err := customers.Register(ctx, in, storage.Uploads{})
		require.NoError(t, err)
		assert.Empty(t, c.Profile)
	})

	t.Run("duplicate email", func(t *testing.T) {
		customers, repo, store := newCustomers(stubTokens{})
		repo.put(models.Customer{FullName: "A", Email: "ASHA@example.com", Phone: "111"})
		uploads := uploaded(store, storage.FolderCustomers, "profile")

		_, err := customers.Register(ctx, in, uploads)

		assert.ErrorIs(t, err, apperror.ErrDuplicateKey)
		assert.Equal(t, "email", apperror.FieldOf(err))
		assert.Equal(t, "Email already exists", apperror.Message(err))
		assert.Empty(t, store.Keys())
	})

	t.Run("duplicate phone", func(t *testing.T) {
		customers, repo, _ := newCustomers(stubTokens{})
		repo.put(models.Customer{FullName: "B", Email: "b@example.com", Phone: "9876543210"})

		_, err := customers.Register(ctx, in, storage.Uploads{})

		assert.ErrorIs(t, err, apperror.ErrDuplicateKey)
		assert.Equal(t, "Phone number already exists", apperror.Message(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		customers, repo, _ := newCustomers(stubTokens{})
		partial := in
		partial.Password = ""

		_, err := customers.Register(ctx, partial, storage.Uploads{})

		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.Equal(t, 0, repo.inserts)
	})
}

func TestCustomerLogin(t *testing.T) {
	ctx := context.Background()
	customers, _, _ := newCustomers(stubTokens{})
	_, err := customers.Register(ctx, RegisterInput{FullName: "Asha", Email: "asha@example.com", Phone: "1", Password: "pw"}, storage.Uploads{})
	require.NoError(t, err)

	token, c, err := customers.Login(ctx, " Asha@Example.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "token-for-asha@example.com", token)
	assert.Equal(t, "Asha", c.FullName)

	_, _, err = customers.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, _, err = customers.Login(ctx, "nobody@example.com", "pw")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", apperror.Message(err))

	_, _, err = customers.Login(ctx, "", "pw")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	failing, _, _ := newCustomers(stubTokens{err: errors.New("boom")})
	_, err = failing.Register(ctx, RegisterInput{FullName: "A", Email: "a@x.in", Phone: "2", Password: "pw"}, storage.Uploads{})
	require.NoError(t, err)
	_, _, err = failing.Login(ctx, "a@x.in", "pw")
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestCustomerUpdateProfile(t *testing.T) {
	ctx := context.Background()
	customers, repo, store := newCustomers(stubTokens{})
	old := store.Seed("AspireBrandStore/CustomerRegisterProfile/old.png")
	id := repo.put(models.Customer{FullName: "Asha", Email: "asha@example.com", Phone: "1", Profile: old})
	repo.put(models.Customer{FullName: "Ravi", Email: "ravi@example.com", Phone: "2"})

	t.Run("new picture and name", func(t *testing.T) {
		uploads := uploaded(store, storage.FolderCustomers, "profile")

		c, err := customers.UpdateProfile(ctx, id, ProfileInput{FullName: strp("Asha R")}, uploads)

		require.NoError(t, err)
		assert.Equal(t, "Asha R", c.FullName)
		assert.Equal(t, "asha@example.com", c.Email)
		assert.Equal(t, uploads["profile"].URL, c.Profile)
		assert.False(t, store.Has("AspireBrandStore/CustomerRegisterProfile/old.png"))
	})

	t.Run("email of another customer", func(t *testing.T) {
		_, err := customers.UpdateProfile(ctx, id, ProfileInput{Email: strp("RAVI@example.com")}, storage.Uploads{})
		assert.ErrorIs(t, err, apperror.ErrDuplicateKey)
	})

	t.Run("password change", func(t *testing.T) {
		c, err := customers.UpdateProfile(ctx, id, ProfileInput{Password: strp("new-pw")}, storage.Uploads{})
		require.NoError(t, err)
		assert.True(t, auth.CheckPassword(c.PasswordHash, "new-pw"))
	})
}
