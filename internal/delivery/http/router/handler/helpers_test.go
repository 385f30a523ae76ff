package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverymiddleware "shiptrack/internal/delivery/http/middleware"
	"shiptrack/internal/delivery/http/validator"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context the way the server sets it up, with
// the request validator attached.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// invoke runs a handler and routes any returned error through the same error
// mapping the server installs, so tests observe the final wire response.
func invoke(t *testing.T, handlerFunc echo.HandlerFunc, c echo.Context) {
	t.Helper()

	if err := handlerFunc(c); err != nil {
		deliverymiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)
	}
}

type mockAccountUsecase struct {
	mock.Mock
}

func (m *mockAccountUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SignupOutput), args.Error(1)
}

func (m *mockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *mockAccountUsecase) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

type mockShipmentUsecase struct {
	mock.Mock
}

func (m *mockShipmentUsecase) CreateShipment(ctx context.Context, input *usecase.CreateShipmentInput) (*entity.Shipment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Shipment), args.Error(1)
}

func (m *mockShipmentUsecase) ListShipments(ctx context.Context) ([]*entity.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Shipment), args.Error(1)
}
