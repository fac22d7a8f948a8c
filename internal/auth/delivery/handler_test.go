package delivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "github.com/xniebuhr/FinanceTracker/internal/auth/domain"
	"github.com/xniebuhr/FinanceTracker/internal/auth/token"
	"github.com/xniebuhr/FinanceTracker/internal/auth/usecase"
	"github.com/xniebuhr/FinanceTracker/pkg/config"
	"github.com/xniebuhr/FinanceTracker/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// --- in-memory fake of the credential store ---

type fakeUserRepo struct {
	users     map[string]*authdomain.User
	passwords map[string]string
	codes     map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[string]*authdomain.User),
		passwords: make(map[string]string),
		codes:     make(map[string]string),
	}
}

func (f *fakeUserRepo) Create(user *authdomain.User, password string) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return authdomain.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return authdomain.ErrDuplicateUsername
		}
	}
	user.ID = uuid.New().String()
	clone := *user
	f.users[user.ID] = &clone
	f.passwords[user.ID] = password
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*authdomain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) VerifyPassword(user *authdomain.User, password string) bool {
	return f.passwords[user.ID] == password
}

func (f *fakeUserRepo) ChangePassword(user *authdomain.User, newPassword string) error {
	f.passwords[user.ID] = newPassword
	return nil
}

func (f *fakeUserRepo) GenerateResetCode(user *authdomain.User) (string, error) {
	code := uuid.New().String()
	f.codes[user.ID] = code
	return code, nil
}

func (f *fakeUserRepo) ConsumeResetCode(user *authdomain.User, code, newPassword string) error {
	if stored, ok := f.codes[user.ID]; !ok || stored != code {
		return authdomain.ErrInvalidResetCode
	}
	delete(f.codes, user.ID)
	f.passwords[user.ID] = newPassword
	return nil
}

func (f *fakeUserRepo) Update(user *authdomain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return errors.New("update of unknown user")
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(user *authdomain.User) error {
	delete(f.users, user.ID)
	delete(f.passwords, user.ID)
	return nil
}

type fakeRecordPurger struct {
	purged []string
}

func (f *fakeRecordPurger) DeleteByUserID(userID string) error {
	f.purged = append(f.purged, userID)
	return nil
}

// --- test server ---

func newTestRouter(t *testing.T) (*gin.Engine, *fakeUserRepo) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:          "test-signing-key",
		JWTIssuer:          "finance-tracker",
		JWTAudience:        "finance-tracker-api",
		AccessTokenMinutes: 60,
		RefreshTokenDays:   7,
	}
	repo := newFakeUserRepo()
	authUc := usecase.NewAuthUsecase(repo, token.NewIssuer(cfg), &fakeRecordPurger{})
	handler := NewAuthHandler(authUc)

	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.Refresh)
		auth.POST("/forgot-password", handler.ForgotPassword)
		auth.POST("/reset-password", handler.ResetPassword)
		auth.DELETE("/delete", AuthMiddleware(authUc), handler.DeleteAccount)
	}
	users := r.Group("/api/users", AuthMiddleware(authUc))
	{
		users.GET("/me", handler.Me)
		users.PUT("/update", handler.UpdateProfile)
		users.POST("/change-password", handler.ChangePassword)
	}
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (response.Envelope, map[string]any) {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	data, _ := env.Data.(map[string]any)
	return env, data
}

func registerAlice(t *testing.T, r *gin.Engine) map[string]any {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username":   "alice",
		"email":      "alice@example.com",
		"password":   "Secret123!",
		"first_name": "Alice",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	env, data := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	return data
}

// --- tests ---

func TestEndToEndSessionLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	// Register: non-empty token pair.
	registered := registerAlice(t, r)
	require.NotEmpty(t, registered["access_token"])
	require.NotEmpty(t, registered["refresh_token"])
	userID := registered["id"].(string)

	// Login: a different refresh token than registration issued.
	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "Secret123!",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, login := decodeEnvelope(t, rec)
	require.NotEmpty(t, login["refresh_token"])
	assert.NotEqual(t, registered["refresh_token"], login["refresh_token"])

	// Refresh with the login-issued token: yet another new pair.
	rec = doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
		"user_id":       userID,
		"refresh_token": login["refresh_token"],
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, refreshed := decodeEnvelope(t, rec)
	assert.NotEqual(t, login["refresh_token"], refreshed["refresh_token"])

	// The superseded token is now rejected.
	rec = doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
		"user_id":       userID,
		"refresh_token": login["refresh_token"],
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginFailureBodiesAreIdentical(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAlice(t, r)

	missing := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "nobody",
		"password": "Secret123!",
	}, "")
	wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "WrongPass1",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Equal(t, missing.Code, wrongPass.Code)
	assert.Equal(t, missing.Body.String(), wrongPass.Body.String())
}

func TestRefreshFailureBodiesAreIdentical(t *testing.T) {
	r, _ := newTestRouter(t)
	registered := registerAlice(t, r)

	unknownUser := doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
		"user_id":       "no-such-user",
		"refresh_token": registered["refresh_token"],
	}, "")
	badToken := doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
		"user_id":       registered["id"],
		"refresh_token": "not-the-token",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, unknownUser.Code, badToken.Code)
	assert.Equal(t, unknownUser.Body.String(), badToken.Body.String())
}

func TestForgotPasswordResponsesAreByteIdentical(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAlice(t, r)

	exists := doJSON(t, r, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": "alice@example.com",
	}, "")
	unknown := doJSON(t, r, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": "never-registered@example.com",
	}, "")

	assert.Equal(t, http.StatusOK, exists.Code)
	assert.Equal(t, exists.Code, unknown.Code)
	assert.Equal(t, exists.Body.String(), unknown.Body.String())
}

func TestForgotPasswordRejectsMalformedEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/forgot-password", gin.H{
		"email": "not-an-email",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Errors)
}

func TestResetPasswordUnknownEmailMatchesSuccessBody(t *testing.T) {
	r, repo := newTestRouter(t)
	registered := registerAlice(t, r)

	// Issue a real code for alice.
	rec := doJSON(t, r, http.MethodPost, "/api/auth/forgot-password", gin.H{"email": "alice@example.com"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	code := repo.codes[registered["id"].(string)]
	require.NotEmpty(t, code)

	success := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", gin.H{
		"email":                "alice@example.com",
		"reset_token":          code,
		"new_password":         "NewSecret123",
		"confirm_new_password": "NewSecret123",
	}, "")
	unknown := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", gin.H{
		"email":                "never-registered@example.com",
		"reset_token":          "anything",
		"new_password":         "NewSecret123",
		"confirm_new_password": "NewSecret123",
	}, "")

	assert.Equal(t, http.StatusOK, success.Code)
	assert.Equal(t, success.Code, unknown.Code)
	assert.Equal(t, success.Body.String(), unknown.Body.String())
}

func TestResetPasswordBadCodeForExistingUserFails(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAlice(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", gin.H{
		"email":                "alice@example.com",
		"reset_token":          "wrong-code",
		"new_password":         "NewSecret123",
		"confirm_new_password": "NewSecret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username":   "alice",
		"email":      "not-an-email",
		"password":   "short",
		"first_name": "",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	// One message per invalid field.
	assert.GreaterOrEqual(t, len(env.Errors), 3)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAlice(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username":   "alice",
		"email":      "other@example.com",
		"password":   "Secret123!",
		"first_name": "Other",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.Contains(t, env.Errors, authdomain.ErrDuplicateUsername.Error())
}

func TestDeleteAccountThenRefreshFails(t *testing.T) {
	r, _ := newTestRouter(t)
	registered := registerAlice(t, r)
	access := registered["access_token"].(string)

	rec := doJSON(t, r, http.MethodDelete, "/api/auth/delete", nil, access)
	require.Equal(t, http.StatusOK, rec.Code)

	// The user is gone, so their last-known refresh token resolves nothing.
	rec = doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
		"user_id":       registered["id"],
		"refresh_token": registered["refresh_token"],
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The still-signed access token no longer resolves a user either.
	rec = doJSON(t, r, http.MethodDelete, "/api/auth/delete", nil, access)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	registered := registerAlice(t, r)
	access := registered["access_token"].(string)

	rec := doJSON(t, r, http.MethodGet, "/api/users/me", nil, access)
	require.Equal(t, http.StatusOK, rec.Code)
	_, me := decodeEnvelope(t, rec)
	assert.Equal(t, "alice", me["username"])
	assert.Equal(t, "alice@example.com", me["email"])

	rec = doJSON(t, r, http.MethodPut, "/api/users/update", gin.H{"last_name": "Smith"}, access)
	require.Equal(t, http.StatusOK, rec.Code)
	_, updated := decodeEnvelope(t, rec)
	assert.Equal(t, "Smith", updated["last_name"])

	rec = doJSON(t, r, http.MethodPut, "/api/users/update", gin.H{}, access)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/users/change-password", gin.H{
		"current_password":     "Secret123!",
		"new_password":         "NewSecret123",
		"confirm_new_password": "NewSecret123",
	}, access)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/users/me", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
