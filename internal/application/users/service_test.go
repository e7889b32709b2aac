package users_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeshare/places-service/internal/application/users"
	"github.com/placeshare/places-service/internal/domain"
	"github.com/placeshare/places-service/internal/infrastructure/memory"
	"github.com/placeshare/places-service/internal/infrastructure/security"
)

func newService(t *testing.T) (*users.Service, *memory.UserRepo) {
	t.Helper()
	repo := memory.NewUserRepo()
	hasher := security.NewBcryptHasher(4)
	signer := security.NewJWTSigner("test-secret", "places-service")
	return users.NewService(repo, hasher, signer, time.Hour), repo
}

func TestRegister_HappyPath(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, "Ada", " ADA@Example.com ", "s3cretpw", "images/ada.png")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", res.User.Email)
	assert.NotEmpty(t, res.User.ID)
	assert.NotEqual(t, "s3cretpw", res.User.PasswordHash)
	assert.Equal(t, "Bearer", res.Tokens.TokenType)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.Equal(t, int64(3600), res.Tokens.ExpiresIn)

	stored, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, stored.ID)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "a@example.com", "pw", "")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.Register(ctx, "Ada", "", "pw", "")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.Register(ctx, "Ada", "a@example.com", "", "")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cretpw", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "ADA@example.com", "otherpass", "")
	assert.True(t, domain.Is(err, "email_already_exists"))
}

func TestLogin_HappyPath(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cretpw", "")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "Ada@Example.com", "s3cretpw")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, res.User.ID)
	assert.NotEmpty(t, res.Tokens.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cretpw", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ada@example.com", "wrongpass")
	assert.True(t, domain.Is(err, "invalid_credentials"))
}

// an unknown email fails exactly like a wrong password
func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cretpw", "")
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, "nobody@example.com", "s3cretpw")
	_, errWrongPw := svc.Login(ctx, "ada@example.com", "wrongpass")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
}

func TestLogin_EmptyInput(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), "", "")
	assert.True(t, domain.Is(err, "invalid_credentials"))
}

func TestList_ReturnsRegisteredUsers(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cretpw", "")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Bob", "bob@example.com", "s3cretpw", "")
	require.NoError(t, err)

	us, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, us, 2)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	svc, _ := newService(t)

	us, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, us)
	assert.Empty(t, us)
}
