package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/coliride/backend/internal/config"
	"github.com/coliride/backend/internal/kafka"
	"github.com/coliride/backend/internal/repository"
	server_mock "github.com/coliride/backend/internal/server/mocks"
	"github.com/coliride/backend/internal/storage"
	"github.com/coliride/backend/internal/upload"
)

func newTestServer(t *testing.T) (*Server, *server_mock.MockStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := server_mock.NewMockStorage(ctrl)

	uploads, err := upload.NewStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	am := NewAuditManager(kafka.NewConsoleProducer(), "audit_logs", 1, 2, 100*time.Millisecond)
	cfg := &config.Config{
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
		CookieMaxAge: time.Hour,
	}
	return New(mockStorage, uploads, am, cfg), mockStorage
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleCreatePackage(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(m *server_mock.MockStorage)
		expectedStatus int
	}{
		{
			name: "created with coerced weight",
			requestBody: map[string]interface{}{
				"userId":          "u-1",
				"title":           "Books",
				"weight":          "2.5",
				"pickupAddress":   "12 Rue A, Paris",
				"deliveryAddress": "3 Rue B, Lyon",
			},
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					CreatePackage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, pkg *repository.Package) (*repository.Package, error) {
						assert.Equal(t, "u-1", pkg.UserID)
						assert.Equal(t, "Books", pkg.Title)
						require.NotNil(t, pkg.Weight)
						assert.Equal(t, 2.5, *pkg.Weight)
						pkg.ID = "p-1"
						pkg.Status = repository.PackagePending
						return pkg, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing title rejected",
			requestBody: map[string]interface{}{
				"userId":          "u-1",
				"pickupAddress":   "12 Rue A, Paris",
				"deliveryAddress": "3 Rue B, Lyon",
			},
			setupMocks:     func(m *server_mock.MockStorage) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user rejected",
			requestBody: map[string]interface{}{
				"userId":          "ghost",
				"title":           "Books",
				"pickupAddress":   "12 Rue A, Paris",
				"deliveryAddress": "3 Rue B, Lyon",
			},
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					CreatePackage(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: no user with id ghost", storage.ErrBadReference))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			requestBody: map[string]interface{}{
				"userId":          "u-1",
				"title":           "Books",
				"pickupAddress":   "12 Rue A, Paris",
				"deliveryAddress": "3 Rue B, Lyon",
			},
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					CreatePackage(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, mockStorage := newTestServer(t)
			tc.setupMocks(mockStorage)

			rr := httptest.NewRecorder()
			srv.handleCreatePackage(rr, jsonRequest(t, http.MethodPost, "/api/packages", tc.requestBody))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				var got repository.Package
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, repository.PackagePending, got.Status)
			}
		})
	}
}

func TestHandleRefundPayment(t *testing.T) {
	refundedAt := time.Now().UTC()
	userName := "Alice Martin"
	packageTitle := "Sofa"
	startLocation := "Paris"
	endLocation := "Lyon"

	tests := []struct {
		name           string
		paymentID      string
		setupMocks     func(m *server_mock.MockStorage)
		expectedStatus int
	}{
		{
			name:      "completed payment refunded",
			paymentID: "pay-1",
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					RefundPayment(gomock.Any(), "pay-1").
					Return(&repository.Payment{
						ID:            "pay-1",
						Status:        repository.PaymentRefunded,
						RefundedAt:    &refundedAt,
						UserName:      &userName,
						PackageTitle:  &packageTitle,
						StartLocation: &startLocation,
						EndLocation:   &endLocation,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "pending payment rejected",
			paymentID: "pay-2",
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					RefundPayment(gomock.Any(), "pay-2").
					Return(nil, storage.ErrRefundNotAllowed)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "unknown payment",
			paymentID: "missing",
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					RefundPayment(gomock.Any(), "missing").
					Return(nil, repository.ErrObjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, mockStorage := newTestServer(t)
			tc.setupMocks(mockStorage)

			req := httptest.NewRequest(http.MethodPost, "/api/payments/"+tc.paymentID+"/refund", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.paymentID})
			rr := httptest.NewRecorder()

			srv.handleRefundPayment(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var got repository.Payment
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, repository.PaymentRefunded, got.Status)
				assert.NotNil(t, got.RefundedAt)

				// the response carries the joined match/package/ride/user
				// context, not just the bare payment row
				body := rr.Body.String()
				assert.Contains(t, body, `"userName":"Alice Martin"`)
				assert.Contains(t, body, `"packageTitle":"Sofa"`)
				assert.Contains(t, body, `"startLocation":"Paris"`)
				assert.Contains(t, body, `"endLocation":"Lyon"`)
			}
		})
	}
}

func TestHandleUpdateMatchStatus(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		setupMocks     func(m *server_mock.MockStorage)
		expectedStatus int
	}{
		{
			name:   "legal transition",
			status: repository.MatchAcceptedBySender,
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					UpdateMatchStatus(gomock.Any(), "m-1", repository.MatchAcceptedBySender).
					Return(&repository.Match{ID: "m-1", Status: repository.MatchAcceptedBySender}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "illegal transition",
			status: repository.MatchConfirmed,
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					UpdateMatchStatus(gomock.Any(), "m-1", repository.MatchConfirmed).
					Return(nil, fmt.Errorf("%w: PROPOSED -> CONFIRMED", repository.ErrInvalidTransition))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown match",
			status: repository.MatchCancelled,
			setupMocks: func(m *server_mock.MockStorage) {
				m.EXPECT().
					UpdateMatchStatus(gomock.Any(), "m-1", repository.MatchCancelled).
					Return(nil, repository.ErrObjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, mockStorage := newTestServer(t)
			tc.setupMocks(mockStorage)

			req := jsonRequest(t, http.MethodPut, "/api/matches/m-1/status",
				map[string]string{"status": tc.status})
			req = mux.SetURLVars(req, map[string]string{"id": "m-1"})
			rr := httptest.NewRecorder()

			srv.handleUpdateMatchStatus(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleRegister(t *testing.T) {
	body := map[string]string{
		"email":     "new@example.com",
		"password":  "longenough",
		"firstName": "New",
		"lastName":  "User",
	}

	t.Run("created", func(t *testing.T) {
		srv, mockStorage := newTestServer(t)
		mockStorage.EXPECT().
			RegisterUser(gomock.Any(), gomock.Any(), "longenough").
			DoAndReturn(func(_ interface{}, user *repository.User, _ string) (*repository.User, error) {
				assert.Equal(t, "new@example.com", user.Email)
				require.NotNil(t, user.Name)
				assert.Equal(t, "New User", *user.Name)
				user.ID = "u-new"
				user.Role = repository.RoleSender
				return user, nil
			})

		rr := httptest.NewRecorder()
		srv.handleRegister(rr, jsonRequest(t, http.MethodPost, "/api/auth/register", body))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		srv, mockStorage := newTestServer(t)
		mockStorage.EXPECT().
			RegisterUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, repository.ErrDuplicateEmail)

		rr := httptest.NewRecorder()
		srv.handleRegister(rr, jsonRequest(t, http.MethodPost, "/api/auth/register", body))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		srv, _ := newTestServer(t)
		short := map[string]string{
			"email":     "new@example.com",
			"password":  "short",
			"firstName": "New",
			"lastName":  "User",
		}

		rr := httptest.NewRecorder()
		srv.handleRegister(rr, jsonRequest(t, http.MethodPost, "/api/auth/register", short))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	t.Run("sets auth cookie", func(t *testing.T) {
		srv, mockStorage := newTestServer(t)
		mockStorage.EXPECT().
			AuthenticateUser(gomock.Any(), "alice@example.com", "password1").
			Return(&repository.User{ID: "u-1", Email: "alice@example.com", Role: repository.RoleSender}, nil)

		rr := httptest.NewRecorder()
		srv.handleLogin(rr, jsonRequest(t, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "alice@example.com", "password": "password1"}))

		require.Equal(t, http.StatusOK, rr.Code)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "auth_token", cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("bad credentials", func(t *testing.T) {
		srv, mockStorage := newTestServer(t)
		mockStorage.EXPECT().
			AuthenticateUser(gomock.Any(), "alice@example.com", "wrong").
			Return(nil, storage.ErrInvalidCredentials)

		rr := httptest.NewRecorder()
		srv.handleLogin(rr, jsonRequest(t, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "alice@example.com", "password": "wrong"}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})
}

func TestHandleListPackagesPagination(t *testing.T) {
	srv, mockStorage := newTestServer(t)
	mockStorage.EXPECT().
		ListPackages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p repository.ListParams) ([]*repository.Package, int, error) {
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 5, p.Limit)
			assert.Equal(t, "paris", p.Search)
			return []*repository.Package{{ID: "p-6"}, {ID: "p-7"}}, 12, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/packages?page=2&limit=5&search=paris", nil)
	rr := httptest.NewRecorder()

	srv.handleListPackages(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got struct {
		Items      []*repository.Package `json:"items"`
		Total      int                   `json:"total"`
		Page       int                   `json:"page"`
		TotalPages int                   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got.Items, 2)
	assert.Equal(t, 12, got.Total)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 3, got.TotalPages)
}

func TestHandleUpdateUserRole(t *testing.T) {
	t.Run("unknown role rejected before storage", func(t *testing.T) {
		srv, _ := newTestServer(t)

		req := jsonRequest(t, http.MethodPut, "/api/users/u-1",
			map[string]string{"role": "SUPERUSER"})
		req = mux.SetURLVars(req, map[string]string{"id": "u-1"})
		rr := httptest.NewRecorder()

		srv.handleUpdateUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("valid role applied", func(t *testing.T) {
		srv, mockStorage := newTestServer(t)
		mockStorage.EXPECT().
			UpdateUser(gomock.Any(), "u-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, upd storage.UserUpdate) (*repository.User, error) {
				require.NotNil(t, upd.Role)
				assert.Equal(t, repository.RoleCarrier, *upd.Role)
				return &repository.User{ID: "u-1", Role: repository.RoleCarrier}, nil
			})

		req := jsonRequest(t, http.MethodPut, "/api/users/u-1",
			map[string]string{"role": repository.RoleCarrier})
		req = mux.SetURLVars(req, map[string]string{"id": "u-1"})
		rr := httptest.NewRecorder()

		srv.handleUpdateUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHandleMarkMessageRead(t *testing.T) {
	srv, mockStorage := newTestServer(t)
	mockStorage.EXPECT().
		MarkMessageRead(gomock.Any(), "msg-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/messages/msg-1/read", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "msg-1"})
	rr := httptest.NewRecorder()

	srv.handleMarkMessageRead(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"read":true}`, rr.Body.String())
}
