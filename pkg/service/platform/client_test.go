package platform_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
	"github.com/secmon-lab/orgshift/pkg/service/platform"
	"github.com/tidwall/gjson"
)

type capturedRequest struct {
	method string
	path   string
	auth   string
	body   string
}

func newTestServer(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		captured.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestSearchUsers(t *testing.T) {
	reply := `{
		"responseCode": "OK",
		"result": {"response": {"count": 3, "content": [
			{"userId": "u1", "rootOrgName": "Old Org", "profileDetails": {"status": "NOT-MY-USER"}},
			{"userId": "u2", "rootOrgName": null},
			{"userId": "u3"}
		]}}
	}`
	srv, captured := newTestServer(t, http.StatusOK, reply)
	client := platform.New(srv.URL, platform.WithAPIKey("secret-key"))

	from := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	records, err := client.SearchUsers(context.Background(), model.PageRequest{
		Offset: 250,
		Limit:  250,
		Filter: model.DirectoryFilter{
			Status:         model.NotMyUserStatus,
			LastMarkedFrom: from,
			LastMarkedTo:   to,
		},
	})
	gt.NoError(t, err).Required()

	t.Run("request", func(t *testing.T) {
		gt.Equal(t, captured.method, http.MethodPost)
		gt.Equal(t, captured.path, "/private/user/v1/search")
		gt.Equal(t, captured.auth, "Bearer secret-key")
		gt.Equal(t, gjson.Get(captured.body, "request.offset").Int(), int64(250))
		gt.Equal(t, gjson.Get(captured.body, "request.limit").Int(), int64(250))
		gt.Equal(t, gjson.Get(captured.body, "request.filters.status").String(), "NOT-MY-USER")
		gt.Equal(t, gjson.Get(captured.body, "request.filters.lastMarkedWindow.from").String(), "2024-03-09T00:00:00.000Z")
		gt.Equal(t, gjson.Get(captured.body, "request.filters.lastMarkedWindow.to").String(), "2024-03-10T12:30:00.000Z")
	})

	t.Run("records", func(t *testing.T) {
		gt.Equal(t, len(records), 3)

		gt.Equal(t, records[0].ID, types.UserID("u1"))
		org, ok := records[0].RootOrg()
		gt.True(t, ok)
		gt.Equal(t, org, types.OrgName("Old Org"))
		gt.Equal(t, gjson.GetBytes(records[0].ProfileDetails, "status").String(), "NOT-MY-USER")

		_, ok = records[1].RootOrg()
		gt.False(t, ok)
		_, ok = records[2].RootOrg()
		gt.False(t, ok)
	})
}

func TestSearchUsersEmptyPage(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"responseCode":"OK","result":{"response":{"count":0,"content":[]}}}`)
	client := platform.New(srv.URL)

	records, err := client.SearchUsers(context.Background(), validPage())
	gt.NoError(t, err)
	gt.Equal(t, len(records), 0)
}

func TestSearchUsersFailure(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusInternalServerError, `{"responseCode":"SERVER_ERROR","params":{"errmsg":"directory unavailable"}}`)
		client := platform.New(srv.URL)

		_, err := client.SearchUsers(context.Background(), validPage())
		upstream := asUpstream(t, err)
		gt.Equal(t, upstream.StatusCode, http.StatusInternalServerError)
		gt.Equal(t, upstream.Message, "directory unavailable")
		gt.Equal(t, upstream.Code, "SERVER_ERROR")
	})

	t.Run("response code not OK", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `{"responseCode":"CLIENT_ERROR"}`)
		client := platform.New(srv.URL)

		_, err := client.SearchUsers(context.Background(), validPage())
		upstream := asUpstream(t, err)
		gt.Equal(t, upstream.Code, "CLIENT_ERROR")
	})

	t.Run("missing content list", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `{"responseCode":"OK","result":{"response":{"count":0}}}`)
		client := platform.New(srv.URL)

		records, err := client.SearchUsers(context.Background(), validPage())
		upstream := asUpstream(t, err)
		gt.Equal(t, upstream.Message, "directory response has no content list")
		gt.Equal(t, len(records), 0)
	})

	t.Run("content is not a list", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `{"responseCode":"OK","result":{"response":{"content":"none"}}}`)
		client := platform.New(srv.URL)

		_, err := client.SearchUsers(context.Background(), validPage())
		asUpstream(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `not json`)
		client := platform.New(srv.URL)

		_, err := client.SearchUsers(context.Background(), validPage())
		gt.Error(t, err)
	})

	t.Run("invalid page", func(t *testing.T) {
		client := platform.New("http://127.0.0.1:1")
		page := validPage()
		page.Limit = 0

		_, err := client.SearchUsers(context.Background(), page)
		gt.True(t, errors.Is(err, model.ErrInvalidPage))
	})

	t.Run("transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := platform.New(url).SearchUsers(context.Background(), validPage())
		gt.Error(t, err)
		var upstream *model.UpstreamError
		gt.False(t, errors.As(err, &upstream))
	})
}

func TestMigrateUser(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{"responseCode":"OK","result":{"response":"SUCCESS"}}`)
	client := platform.New(srv.URL)

	err := client.MigrateUser(context.Background(), interfaces.MigrateUserRequest{
		UserID:           "u1",
		Channel:          "New Org",
		SoftDeleteOldOrg: true,
		ForceMigration:   true,
	})
	gt.NoError(t, err)

	gt.Equal(t, captured.method, http.MethodPatch)
	gt.Equal(t, captured.path, "/private/user/v1/migrate")

	var body struct {
		Request map[string]any `json:"request"`
	}
	gt.NoError(t, json.Unmarshal([]byte(captured.body), &body)).Required()
	gt.Equal(t, body.Request["userId"], any("u1"))
	gt.Equal(t, body.Request["channel"], any("New Org"))
	gt.Equal(t, body.Request["softDeleteOldOrg"], any(true))
	gt.Equal(t, body.Request["notifyMigration"], any(false))
	gt.Equal(t, body.Request["forceMigration"], any(true))
}

func TestMigrateUserRejected(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadRequest, `{"responseCode":"CLIENT_ERROR","params":{"err":"USER_NOT_FOUND","errorMessage":"User not found"}}`)
	client := platform.New(srv.URL)

	err := client.MigrateUser(context.Background(), interfaces.MigrateUserRequest{UserID: "u1", Channel: "New Org"})
	upstream := asUpstream(t, err)
	gt.Equal(t, upstream.Operation, "migrate user")
	gt.Equal(t, upstream.Code, "USER_NOT_FOUND")
	gt.Equal(t, upstream.Message, "User not found")
}

func TestPatchDepartment(t *testing.T) {
	t.Run("success only needs 2xx", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusAccepted, `{}`)
		client := platform.New(srv.URL, platform.WithAPIKey("k"))

		gt.NoError(t, client.PatchDepartment(context.Background(), "u1", "New Org"))
		gt.Equal(t, captured.method, http.MethodPatch)
		gt.Equal(t, captured.path, "/private/user/v1/extended/patch")
		gt.Equal(t, gjson.Get(captured.body, "request.userId").String(), "u1")
		gt.Equal(t, gjson.Get(captured.body, "request.profileDetails.employmentDetails.departmentName").String(), "New Org")
	})

	t.Run("locked profile", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusConflict, `{"params":{"errmsg":"Profile is locked"}}`)
		client := platform.New(srv.URL)

		err := client.PatchDepartment(context.Background(), "u1", "New Org")
		upstream := asUpstream(t, err)
		gt.Equal(t, upstream.StatusCode, http.StatusConflict)
		gt.Equal(t, upstream.Message, "Profile is locked")
	})
}

func TestAssignRoles(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv, captured := newTestServer(t, http.StatusOK, `{"responseCode":"OK"}`)
		client := platform.New(srv.URL)

		err := client.AssignRoles(context.Background(), "org-1", "u1", []types.RoleName{model.DefaultRole})
		gt.NoError(t, err)
		gt.Equal(t, captured.method, http.MethodPost)
		gt.Equal(t, captured.path, "/private/user/v1/role/assign")
		gt.Equal(t, gjson.Get(captured.body, "request.organisationId").String(), "org-1")
		gt.Equal(t, gjson.Get(captured.body, "request.roles.0").String(), "PUBLIC")
	})

	t.Run("error message at top level", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `{"responseCode":"CLIENT_ERROR","errorMessage":"Invalid role"}`)
		client := platform.New(srv.URL)

		err := client.AssignRoles(context.Background(), "org-1", "u1", []types.RoleName{"ADMIN"})
		upstream := asUpstream(t, err)
		gt.Equal(t, upstream.Message, "Invalid role")
		gt.Equal(t, upstream.Code, "CLIENT_ERROR")
	})
}

func validPage() model.PageRequest {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	return model.PageRequest{
		Limit:  model.DefaultPageSize,
		Filter: model.NewLastMarkedFilter(now),
	}
}

func asUpstream(t *testing.T, err error) *model.UpstreamError {
	t.Helper()
	var upstream *model.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	return upstream
}
