package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gaurisonawane07/StoreRater/configs"
	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/pkg/apperr"
	"github.com/gaurisonawane07/StoreRater/repository"
	"github.com/gaurisonawane07/StoreRater/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Store{}, &entity.Rating{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *configs.Config {
	return &configs.Config{JWTSecret: "test-secret", JWTTTL: 7 * 24 * time.Hour}
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testConfig()), db
}

const (
	validName     = "Jonathan Michael Carter"
	validEmail    = "jon@example.com"
	validPassword = "Str0ng!Pass"
)

func TestRegisterAssignsUserRoleAndToken(t *testing.T) {
	svc, _ := newAuthService(t)

	user, token, err := svc.Register(validName, validEmail, validPassword, "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEmpty(t, token)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, validEmail, claims.Email)

	// stored hash never equals the plaintext
	assert.NotEqual(t, validPassword, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(validPassword)))
}

func TestRegisterValidatesFirstFailingField(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register("short", validEmail, validPassword, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "Name must be at least 20 characters", err.Error())

	_, _, err = svc.Register(validName, "bad-email", validPassword, "")
	require.Error(t, err)
	assert.Equal(t, "Email is invalid", err.Error())

	_, _, err = svc.Register(validName, validEmail, "weakpass", "")
	require.Error(t, err)
	assert.Equal(t, "Password must be 8-16 characters", err.Error())
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register(validName, validEmail, validPassword, "")
	require.NoError(t, err)

	_, _, err = svc.Register(validName, "JON@Example.Com", validPassword, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "Email already registered", err.Error())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	_, _, err := svc.Register(validName, validEmail, validPassword, "")
	require.NoError(t, err)

	_, _, errUnknown := svc.Login("nobody@example.com", validPassword)
	_, _, errWrongPass := svc.Login(validEmail, "Wr0ng!Password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(errUnknown))
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(errWrongPass))
}

func TestLoginSucceedsWithUppercasedEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	_, _, err := svc.Register(validName, validEmail, validPassword, "")
	require.NoError(t, err)

	user, token, err := svc.Login("JON@EXAMPLE.COM", validPassword)
	require.NoError(t, err)
	assert.Equal(t, validEmail, user.Email)
	assert.NotEmpty(t, token)
}

func TestUpdatePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	user, _, err := svc.Register(validName, validEmail, validPassword, "")
	require.NoError(t, err)

	err = svc.UpdatePassword(user.ID, "Wr0ng!Password", "N3w!Password")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "Old password is incorrect", err.Error())

	err = svc.UpdatePassword(user.ID, validPassword, "weak")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	require.NoError(t, svc.UpdatePassword(user.ID, validPassword, "N3w!Password"))

	_, _, err = svc.Login(validEmail, validPassword)
	require.Error(t, err, "old password no longer works")
	_, _, err = svc.Login(validEmail, "N3w!Password")
	require.NoError(t, err)
}
