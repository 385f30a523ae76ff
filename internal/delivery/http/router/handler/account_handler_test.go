package handler

import (
	"net/http"
	"testing"

	deliverymiddleware "shiptrack/internal/delivery/http/middleware"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountHandler_Signup_Success(t *testing.T) {
	uc := &mockAccountUsecase{}
	uc.On("Signup", mock.Anything, &usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	}).Return(&usecase.SignupOutput{Message: "User registered successfully"}, nil)

	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newTestContext(http.MethodPost, "/api/signup",
		`{"username":"alice","email":"alice@example.com","password":"password123"}`)

	invoke(t, h.Signup, c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())
}

func TestAccountHandler_Signup_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"empty object":     `{}`,
		"missing password": `{"username":"alice","email":"alice@example.com"}`,
		"empty username":   `{"username":"","email":"alice@example.com","password":"password123"}`,
		"malformed json":   `{"username":`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			uc := &mockAccountUsecase{}
			h := NewAccountHandler(uc, newDiscardLogger())
			c, rec := newTestContext(http.MethodPost, "/api/signup", body)

			invoke(t, h.Signup, c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"All fields are required"}`, rec.Body.String())
			uc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountHandler_Signup_Duplicate(t *testing.T) {
	uc := &mockAccountUsecase{}
	uc.On("Signup", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAccountExists.WrapMessage("probe matched"))

	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newTestContext(http.MethodPost, "/api/signup",
		`{"username":"alice","email":"alice2@example.com","password":"password123"}`)

	invoke(t, h.Signup, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Username or email already exists"}`, rec.Body.String())
}

func TestAccountHandler_Signup_InternalError(t *testing.T) {
	uc := &mockAccountUsecase{}
	uc.On("Signup", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newTestContext(http.MethodPost, "/api/signup",
		`{"username":"alice","email":"alice@example.com","password":"password123"}`)

	invoke(t, h.Signup, c)

	// Raw store errors never leak through this endpoint.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestAccountHandler_Login_Success(t *testing.T) {
	uc := &mockAccountUsecase{}
	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Username: "alice",
		Password: "password123",
	}).Return(&usecase.LoginOutput{Message: "Login successful", Token: "signed.session.token"}, nil)

	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newTestContext(http.MethodPost, "/api/login",
		`{"username":"alice","password":"password123"}`)

	invoke(t, h.Login, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Login successful","token":"signed.session.token"}`, rec.Body.String())
}

func TestAccountHandler_Login_MissingFields(t *testing.T) {
	uc := &mockAccountUsecase{}
	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newTestContext(http.MethodPost, "/api/login", `{"username":"alice"}`)

	invoke(t, h.Login, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Username and password are required"}`, rec.Body.String())
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAccountHandler_Login_FailureBodiesAreIdentical(t *testing.T) {
	runLogin := func(body string) (int, string) {
		uc := &mockAccountUsecase{}
		uc.On("Login", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("rejected"))

		h := NewAccountHandler(uc, newDiscardLogger())
		c, rec := newTestContext(http.MethodPost, "/api/login", body)
		invoke(t, h.Login, c)

		return rec.Code, rec.Body.String()
	}

	unknownCode, unknownBody := runLogin(`{"username":"ghost","password":"whatever"}`)
	mismatchCode, mismatchBody := runLogin(`{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, unknownCode)
	assert.JSONEq(t, `{"error":"Invalid username or password"}`, unknownBody)

	// Byte-identical responses for unknown username and wrong password.
	assert.Equal(t, unknownCode, mismatchCode)
	assert.Equal(t, unknownBody, mismatchBody)
}

func TestAccountHandler_Me(t *testing.T) {
	accountID := uuid.New()
	uc := &mockAccountUsecase{}
	uc.On("GetAccount", mock.Anything, accountID).Return(&entity.Account{
		ID:           accountID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
	}, nil)

	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newTestContext(http.MethodGet, "/api/me", "")
	c.Set(deliverymiddleware.ContextAccountIDKey, accountID)

	invoke(t, h.Me, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_Me_WithoutAuthContext(t *testing.T) {
	uc := &mockAccountUsecase{}
	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newTestContext(http.MethodGet, "/api/me", "")

	invoke(t, h.Me, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	invoke(t, HealthCheck, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
