package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/crypto/bcrypt"

	"github.com/bloomafter40/platform/internal/entity"
)

type memoryUserRepo struct {
	byEmail   map[string]*entity.User
	createErr error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return entity.ErrEmailAlreadyExists
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

type memorySessionRepo struct {
	byToken map[string]*entity.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{byToken: make(map[string]*entity.Session)}
}

func (r *memorySessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.byToken[session.Token] = session
	return nil
}

func (r *memorySessionRepo) FindByToken(_ context.Context, token string) (*entity.Session, error) {
	session, ok := r.byToken[token]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

func (r *memorySessionRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.byToken[token]; !ok {
		return entity.ErrSessionNotFound
	}
	delete(r.byToken, token)
	return nil
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	users := newMemoryUserRepo()
	sessions := newMemorySessionRepo()
	uc := NewAuthUseCase(users, sessions)

	out, err := uc.Register(context.Background(), RegisterInput{
		Email:     "Ana@Example.com",
		Password:  "correct horse battery",
		FirstName: "Ana",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.NotEqual(t, "correct horse battery", out.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(out.User.PasswordHash), []byte("correct horse battery")))

	assert.NotEmpty(t, out.Session.Token)
	stored, err := sessions.FindByToken(context.Background(), out.Session.Token)
	assert.NoError(t, err)
	assert.Equal(t, out.User.ID, stored.UserID)
	assert.False(t, stored.Expired())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uc := NewAuthUseCase(newMemoryUserRepo(), newMemorySessionRepo())

	input := RegisterInput{Email: "ana@example.com", Password: "long enough pw", FirstName: "Ana"}
	_, err := uc.Register(context.Background(), input)
	assert.NoError(t, err)

	_, err = uc.Register(context.Background(), input)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
}

func TestLoginWithGoodPassword(t *testing.T) {
	uc := NewAuthUseCase(newMemoryUserRepo(), newMemorySessionRepo())

	registered, err := uc.Register(context.Background(), RegisterInput{
		Email: "ana@example.com", Password: "long enough pw", FirstName: "Ana",
	})
	assert.NoError(t, err)

	out, err := uc.Login(context.Background(), LoginInput{Email: "ANA@example.com", Password: "long enough pw"})
	assert.NoError(t, err)
	assert.Equal(t, registered.User.ID, out.User.ID)
	assert.NotEqual(t, registered.Session.Token, out.Session.Token)
}

func TestLoginDoesNotLeakWhichEmailsExist(t *testing.T) {
	uc := NewAuthUseCase(newMemoryUserRepo(), newMemorySessionRepo())

	_, err := uc.Register(context.Background(), RegisterInput{
		Email: "ana@example.com", Password: "long enough pw", FirstName: "Ana",
	})
	assert.NoError(t, err)

	_, badPassword := uc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong"})
	_, unknownEmail := uc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "wrong"})

	var errA, errB *DomainError
	assert.ErrorAs(t, badPassword, &errA)
	assert.ErrorAs(t, unknownEmail, &errB)
	assert.Equal(t, errA.Code, errB.Code)
	assert.Equal(t, errA.Message, errB.Message)
}

func TestLogoutIsIdempotent(t *testing.T) {
	sessions := newMemorySessionRepo()
	uc := NewAuthUseCase(newMemoryUserRepo(), sessions)

	out, err := uc.Register(context.Background(), RegisterInput{
		Email: "ana@example.com", Password: "long enough pw", FirstName: "Ana",
	})
	assert.NoError(t, err)

	assert.NoError(t, uc.Logout(context.Background(), out.Session.Token))
	// A second logout with the same (now dead) token is not an error.
	assert.NoError(t, uc.Logout(context.Background(), out.Session.Token))
}
