package platform

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/types"
	"github.com/tidwall/sjson"
)

type migrateRequest struct {
	Request migrateRequestBody `json:"request"`
}

type migrateRequestBody struct {
	UserID           string `json:"userId"`
	Channel          string `json:"channel"`
	SoftDeleteOldOrg bool   `json:"softDeleteOldOrg"`
	NotifyMigration  bool   `json:"notifyMigration"`
	ForceMigration   bool   `json:"forceMigration"`
}

// MigrateUser moves a user to the organization named by req.Channel
func (c *Client) MigrateUser(ctx context.Context, req interfaces.MigrateUserRequest) error {
	const operation = "migrate user"

	body := migrateRequest{
		Request: migrateRequestBody{
			UserID:           req.UserID.String(),
			Channel:          req.Channel.String(),
			SoftDeleteOldOrg: req.SoftDeleteOldOrg,
			NotifyMigration:  req.NotifyMigration,
			ForceMigration:   req.ForceMigration,
		},
	}

	resp, err := c.fetch(ctx, operation, c.apiBuilder(migrateUserPath).Patch().BodyJSON(&body))
	if err != nil {
		return err
	}
	return resp.expectOK(operation)
}

// PatchDepartment sets the department of the user's employment details. The
// profile service only reports success through the HTTP status.
func (c *Client) PatchDepartment(ctx context.Context, userID types.UserID, departmentName string) error {
	const operation = "patch profile"

	body, err := sjson.Set(`{"request":{}}`, "request.userId", userID.String())
	if err == nil {
		body, err = sjson.Set(body, "request.profileDetails.employmentDetails.departmentName", departmentName)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to build profile patch", goerr.V("userID", userID))
	}

	resp, err := c.fetch(ctx, operation, c.apiBuilder(patchProfilePath).
		Patch().
		BodyBytes([]byte(body)).
		ContentType("application/json"))
	if err != nil {
		return err
	}
	if !resp.isHTTPSuccess() {
		return newUpstreamError(operation, resp)
	}
	return nil
}

type assignRolesRequest struct {
	Request assignRolesRequestBody `json:"request"`
}

type assignRolesRequestBody struct {
	OrganisationID string   `json:"organisationId"`
	UserID         string   `json:"userId"`
	Roles          []string `json:"roles"`
}

// AssignRoles grants roles to the user within the organization
func (c *Client) AssignRoles(ctx context.Context, orgID types.OrgID, userID types.UserID, roles []types.RoleName) error {
	const operation = "assign roles"

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	body := assignRolesRequest{
		Request: assignRolesRequestBody{
			OrganisationID: orgID.String(),
			UserID:         userID.String(),
			Roles:          names,
		},
	}

	resp, err := c.fetch(ctx, operation, c.apiBuilder(assignRolesPath).Post().BodyJSON(&body))
	if err != nil {
		return err
	}
	return resp.expectOK(operation)
}
