package cli_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgshift/pkg/cli"
	"github.com/tidwall/gjson"
)

type fakePlatform struct {
	mu       sync.Mutex
	searches int
	paths    []string
}

func newFakePlatform(t *testing.T, searchStatus int) (*httptest.Server, *fakePlatform) {
	t.Helper()
	fake := &fakePlatform{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		fake.mu.Lock()
		fake.paths = append(fake.paths, r.URL.Path)
		if r.URL.Path == "/private/user/v1/search" {
			fake.searches++
		}
		fake.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/private/user/v1/search":
			if searchStatus != http.StatusOK {
				w.WriteHeader(searchStatus)
				_, _ = w.Write([]byte(`{"responseCode":"SERVER_ERROR","params":{"errmsg":"directory unavailable"}}`))
				return
			}
			if gjson.GetBytes(body, "request.offset").Int() > 0 {
				_, _ = w.Write([]byte(`{"responseCode":"OK","result":{"response":{"count":0,"content":[]}}}`))
				return
			}
			_, _ = w.Write([]byte(`{"responseCode":"OK","result":{"response":{"count":1,"content":[
				{"userId":"u1","rootOrgName":"Old Org"}
			]}}}`))
		default:
			_, _ = w.Write([]byte(`{"responseCode":"OK","result":{"response":"SUCCESS"}}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, fake
}

func migrateArgs(url string) []string {
	return []string{
		"orgshift",
		"--log-format", "json",
		"migrate",
		"--platform-url", url,
		"--target-org-name", "New Org",
		"--target-org-id", "org-new",
		"--page-size", "10",
	}
}

func TestRun_Migrate(t *testing.T) {
	t.Setenv("ORGSHIFT_FIRESTORE_PROJECT", "")
	t.Setenv("ORGSHIFT_SLACK_OAUTH_TOKEN", "")

	t.Run("migrates every candidate", func(t *testing.T) {
		srv, fake := newFakePlatform(t, http.StatusOK)

		gt.NoError(t, cli.Run(context.Background(), migrateArgs(srv.URL)))

		gt.Equal(t, fake.searches, 2)
		gt.A(t, fake.paths).Has("/private/user/v1/migrate")
		gt.A(t, fake.paths).Has("/private/user/v1/extended/patch")
		gt.A(t, fake.paths).Has("/private/user/v1/role/assign")
	})

	t.Run("directory failure fails the command", func(t *testing.T) {
		srv, fake := newFakePlatform(t, http.StatusInternalServerError)

		gt.Error(t, cli.Run(context.Background(), migrateArgs(srv.URL)))
		gt.Equal(t, fake.searches, 1)
	})

	t.Run("missing target org is rejected", func(t *testing.T) {
		srv, fake := newFakePlatform(t, http.StatusOK)

		args := []string{"orgshift", "migrate", "--platform-url", srv.URL}
		gt.Error(t, cli.Run(context.Background(), args))
		gt.Equal(t, fake.searches, 0)
	})
}
