package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profilehub/internal/delivery/http/middleware"
	"profilehub/internal/domain/entity"
	domainerrors "profilehub/internal/domain/errors"
	mockUsecase "profilehub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	server *echo.Echo
	uc     *mockUsecase.MockProfileUsecase
}

func createTestHandler(t *testing.T) handlerFixtures {
	uc := mockUsecase.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewProfileHandler(uc)
	e.GET("/health", HealthCheck)
	e.POST("/login", h.Login)
	e.GET("/profiles", h.List)
	e.POST("/profiles", h.Add)
	e.PUT("/profiles", h.Update)
	e.GET("/profiles/:id", h.GetByID)
	e.PATCH("/profiles/:id", h.Patch)
	e.DELETE("/profiles/:id", h.DeleteByID)

	return handlerFixtures{server: e, uc: uc}
}

func (fx handlerFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestProfileHandler_HealthCheck(t *testing.T) {
	fx := createTestHandler(t)

	rec := fx.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestProfileHandler_Add_AnswersOK(t *testing.T) {
	fx := createTestHandler(t)

	created := &entity.UserProfile{ID: 1, Username: "alice", Email: "alice@example.com"}
	fx.uc.EXPECT().
		Add(mock.Anything, mock.AnythingOfType("*usecase.ProfileInput")).
		Return(created, nil)

	rec := fx.do(http.MethodPost, "/profiles",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

	// Registration publishes 200, not 201.
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", data["username"])
	// The plaintext password never appears in a response body.
	assert.NotContains(t, rec.Body.String(), "s3cret")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestProfileHandler_Add_DuplicateEmail(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Add(mock.Anything, mock.AnythingOfType("*usecase.ProfileInput")).
		Return(nil, domainerrors.ErrDuplicateEmail.WrapMessage("email already registered"))

	rec := fx.do(http.MethodPost, "/profiles",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, domainerrors.MsgDuplicateEmail, body["message"])
}

func TestProfileHandler_GetByID_OK(t *testing.T) {
	fx := createTestHandler(t)

	stored := &entity.UserProfile{ID: 7, Username: "alice", Email: "alice@example.com"}
	fx.uc.EXPECT().GetByID(mock.Anything, int64(7)).Return(stored, nil)

	rec := fx.do(http.MethodGet, "/profiles/7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestProfileHandler_GetByID_NonNumericID(t *testing.T) {
	fx := createTestHandler(t)

	rec := fx.do(http.MethodGet, "/profiles/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, domainerrors.MsgBadRequest, body["message"])
}

func TestProfileHandler_GetByID_NotFoundMapsToBadRequest(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().GetByID(mock.Anything, int64(99)).
		Return(nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found by id"))

	rec := fx.do(http.MethodGet, "/profiles/99", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, domainerrors.MsgBadRequest, body["message"])
}

func TestProfileHandler_Patch_OK(t *testing.T) {
	fx := createTestHandler(t)

	patched := &entity.UserProfile{ID: 7, Username: "alice", Email: "new@example.com"}
	fx.uc.EXPECT().
		Patch(mock.Anything, int64(7), mock.AnythingOfType("[]repository.PatchOperation")).
		Return(patched, nil)

	rec := fx.do(http.MethodPatch, "/profiles/7",
		`[{"op":"replace","path":"/email","value":"new@example.com"}]`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"new@example.com"`)
}

func TestProfileHandler_Update_UnknownUsernameAnswersUnauthorized(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		UpdateByUsername(mock.Anything, mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Return(nil, domainerrors.ErrLoginFailed.WrapMessage("unknown username on update"))

	rec := fx.do(http.MethodPut, "/profiles",
		`{"username":"ghost","email":"ghost@example.com"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, domainerrors.MsgLoginFailed, body["message"])
}

func TestProfileHandler_DeleteByID_OK(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().DeleteByID(mock.Anything, int64(7)).Return(nil)

	rec := fx.do(http.MethodDelete, "/profiles/7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrLoginFailed.WrapMessage("password mismatch"))

	rec := fx.do(http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, domainerrors.MsgLoginFailed, body["message"])
}

func TestProfileHandler_InternalFaultHidesDetail(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().List(mock.Anything).
		Return(nil, domainerrors.ErrInternalError.WrapMessage("failed to list profiles"))

	rec := fx.do(http.MethodGet, "/profiles", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, domainerrors.MsgInternalError, body["message"])
	assert.NotContains(t, rec.Body.String(), "failed to list profiles")
}
