package subscription

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/desbrava-tech/clubhub/internal/domain"
	subscriptionservice "github.com/desbrava-tech/clubhub/internal/service/subscriptionservice"
	"github.com/desbrava-tech/clubhub/pkg/auth"
)

func NewMock(t *testing.T) (*SubscriptionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withIdentity(r *http.Request, userID, clubID int, role string) *http.Request {
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.ClubIDKey, clubID)
	ctx = context.WithValue(ctx, auth.RoleKey, role)
	return r.WithContext(ctx)
}

func TestCanAddMemberHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		clubID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Admission allowed",
			clubID: "1",
			prepareMock: func() {
				service.EXPECT().CanAddMember(gomock.Any(), 1).Return(&domain.CanAddMemberResult{CanAdd: true, CurrentCount: 28, MemberLimit: 30}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid club id",
			clubID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Service error",
			clubID: "1",
			prepareMock: func() {
				service.EXPECT().CanAddMember(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/can-add-member/"+tt.clubID, nil)
			r = withURLParam(r, "clubID", tt.clubID)
			w := httptest.NewRecorder()

			handler.CanAddMember(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetClubSubscriptionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		clubID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Returns the view",
			clubID: "1",
			prepareMock: func() {
				view := &domain.SubscriptionView{ClubID: 1, ClubName: "Clube A", Status: domain.SubscriptionActive}
				service.EXPECT().GetClubSubscription(gomock.Any(), 1).Return(view, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Club not found",
			clubID: "99",
			prepareMock: func() {
				service.EXPECT().GetClubSubscription(gomock.Any(), 99).Return(nil, subscriptionservice.ErrClubNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid club id",
			clubID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/club/"+tt.clubID, nil)
			r = withURLParam(r, "clubID", tt.clubID)
			w := httptest.NewRecorder()

			handler.GetClubSubscription(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreatePaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		userClubID   int
		role         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:       "Director creates a payment for their own club",
			body:       `{"clubId":1,"type":"SUBSCRIPTION","metadata":{"memberCount":50,"months":3}}`,
			userClubID: 1,
			role:       auth.RoleDirector,
			prepareMock: func() {
				service.EXPECT().CalculateAmount(50, 3).Return(300.0)
				service.EXPECT().GenerateDescription(50, 3).Return("Quarterly - 50 Accesses")
				service.EXPECT().CreatePendingPayment(gomock.Any(), 1, domain.PaymentTypeSubscription, 300.0, "Quarterly - 50 Accesses",
					domain.PaymentMetadata{MemberCount: 50, Months: 3}).
					Return(&domain.Payment{ID: 10, ClubID: 1, Amount: 300.0, Status: domain.PaymentPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Director blocked from another club",
			body:         `{"clubId":2,"type":"SUBSCRIPTION","metadata":{"memberCount":50,"months":3}}`,
			userClubID:   1,
			role:         auth.RoleDirector,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:       "Master can target any club",
			body:       `{"clubId":2,"type":"SUBSCRIPTION","amount":300,"description":"Quarterly - 50 Accesses","metadata":{"memberCount":50,"months":3}}`,
			userClubID: 1,
			role:       auth.RoleMaster,
			prepareMock: func() {
				service.EXPECT().CreatePendingPayment(gomock.Any(), 2, domain.PaymentTypeSubscription, 300.0, "Quarterly - 50 Accesses",
					domain.PaymentMetadata{MemberCount: 50, Months: 3}).
					Return(&domain.Payment{ID: 11, ClubID: 2}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         `{bad`,
			userClubID:   1,
			role:         auth.RoleMaster,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "Unknown club",
			body:       `{"clubId":1,"type":"SUBSCRIPTION","amount":300,"metadata":{"memberCount":50,"months":3}}`,
			userClubID: 1,
			role:       auth.RoleMaster,
			prepareMock: func() {
				service.EXPECT().GenerateDescription(50, 3).Return("Quarterly - 50 Accesses")
				service.EXPECT().CreatePendingPayment(gomock.Any(), 1, domain.PaymentTypeSubscription, 300.0, "Quarterly - 50 Accesses",
					domain.PaymentMetadata{MemberCount: 50, Months: 3}).
					Return(nil, subscriptionservice.ErrClubNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:       "Invalid metadata",
			body:       `{"clubId":1,"type":"SUBSCRIPTION","amount":300,"description":"x","metadata":{}}`,
			userClubID: 1,
			role:       auth.RoleMaster,
			prepareMock: func() {
				service.EXPECT().CreatePendingPayment(gomock.Any(), 1, domain.PaymentTypeSubscription, 300.0, "x",
					domain.PaymentMetadata{}).
					Return(nil, subscriptionservice.ErrInvalidMetadata)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(tt.body))
			r = withIdentity(r, 7, tt.userClubID, tt.role)
			w := httptest.NewRecorder()

			handler.CreatePayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestConfirmPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)
	next := time.Now().AddDate(0, 3, 0)

	tests := []struct {
		name         string
		paymentID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Successful confirmation",
			paymentID: "10",
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), 10, "7").Return(next, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Payment not found",
			paymentID: "99",
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), 99, "7").Return(time.Time{}, subscriptionservice.ErrPaymentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Second confirm conflicts",
			paymentID: "10",
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), 10, "7").Return(time.Time{}, subscriptionservice.ErrPaymentAlreadyConfirmed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid payment id",
			paymentID:    "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPatch, "/payments/"+tt.paymentID+"/confirm", nil)
			r = withURLParam(r, "id", tt.paymentID)
			r = withIdentity(r, 7, 0, auth.RoleMaster)
			w := httptest.NewRecorder()

			handler.ConfirmPayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRefundPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		paymentID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Successful refund",
			paymentID: "10",
			prepareMock: func() {
				service.EXPECT().RefundPayment(gomock.Any(), 10).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Unknown payment",
			paymentID: "10",
			prepareMock: func() {
				service.EXPECT().RefundPayment(gomock.Any(), 10).Return(subscriptionservice.ErrPaymentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPatch, "/payments/"+tt.paymentID+"/refund", nil)
			r = withURLParam(r, "id", tt.paymentID)
			w := httptest.NewRecorder()

			handler.RefundPayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeletePaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		paymentID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Successful delete",
			paymentID: "10",
			prepareMock: func() {
				service.EXPECT().DeletePayment(gomock.Any(), 10).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Payment not found",
			paymentID: "99",
			prepareMock: func() {
				service.EXPECT().DeletePayment(gomock.Any(), 99).Return(subscriptionservice.ErrPaymentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodDelete, "/payments/"+tt.paymentID, nil)
			r = withURLParam(r, "id", tt.paymentID)
			w := httptest.NewRecorder()

			handler.DeletePayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetClubPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetClubPayments(gomock.Any(), 1).Return([]domain.Payment{{ID: 10, ClubID: 1}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/payments/club/1", nil)
	r = withURLParam(r, "clubID", "1")
	w := httptest.NewRecorder()

	handler.GetClubPayments(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), strconv.Itoa(10))
}

func TestGetPendingPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetPendingPayments(gomock.Any()).Return([]domain.Payment{{ID: 10, Status: domain.PaymentPending}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/payments/pending", nil)
	w := httptest.NewRecorder()

	handler.GetPendingPayments(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetConfigHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Config().Return(subscriptionservice.BillingConfig{
		PricePerMember:  2.00,
		GracePeriodDays: 5,
		WarningDays:     []int{7, 3, 1},
		SupportContact:  "suporte@clubhub.app",
	})

	r := httptest.NewRequest(http.MethodGet, "/config", nil)
	w := httptest.NewRecorder()

	handler.GetConfig(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "suporte@clubhub.app")
}

func TestCheckExpiredHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Sweep reports counts",
			prepareMock: func() {
				service.EXPECT().CheckExpiredSubscriptions(gomock.Any()).Return(&domain.SweepResult{Checked: 5, Updated: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Sweep failure",
			prepareMock: func() {
				service.EXPECT().CheckExpiredSubscriptions(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/check-expired", nil)
			w := httptest.NewRecorder()

			handler.CheckExpired(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
