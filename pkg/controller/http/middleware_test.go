package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/orgshift/pkg/controller/http"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

var adminSecret = []byte("test-admin-secret")

func signToken(t *testing.T, key []byte, subject string, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(time.Now()).
		Expiration(expiresAt).
		Build()
	gt.NoError(t, err).Required()

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, key))
	gt.NoError(t, err).Required()
	return string(signed)
}

func TestRequireAdmin(t *testing.T) {
	var requester string
	uc := &mocks.MigrationMock{
		RunBatchFunc: func(ctx context.Context) *model.BatchResult {
			runCtx, _ := model.GetRunContext(ctx)
			requester = runCtx.Requester
			return succeededResult(ctx)
		},
	}
	srv := controller.NewServer(testContext(), ":0", uc, controller.WithAdminSecret(adminSecret))

	request := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/org-migration", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing token", func(t *testing.T) {
		gt.Equal(t, request("").Code, http.StatusUnauthorized)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		token := signToken(t, []byte("wrong-secret"), "ops@example.com", time.Now().Add(time.Hour))
		gt.Equal(t, request(token).Code, http.StatusUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, adminSecret, "ops@example.com", time.Now().Add(-time.Hour))
		gt.Equal(t, request(token).Code, http.StatusUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		gt.Equal(t, request("not-a-jwt").Code, http.StatusUnauthorized)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, adminSecret, "ops@example.com", time.Now().Add(time.Hour))
		rec := request(token)
		gt.Equal(t, rec.Code, http.StatusOK)
		gt.Equal(t, requester, "ops@example.com")
	})

	t.Run("no run is started without a valid token", func(t *testing.T) {
		gt.A(t, uc.RunBatchCalls()).Length(1)
	})

	t.Run("health stays open", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/health")
		gt.Equal(t, rec.Code, http.StatusOK)
	})
}

func TestRequireAdminWithoutSecret(t *testing.T) {
	uc := &mocks.MigrationMock{
		RunBatchFunc: func(ctx context.Context) *model.BatchResult {
			return succeededResult(ctx)
		},
	}
	srv := controller.NewServer(testContext(), ":0", uc)

	rec := serve(t, srv, http.MethodGet, "/api/admin/org-migration")
	gt.Equal(t, rec.Code, http.StatusOK)
}
