package middleware_test

import (
	"context"
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/common"
	"edu_crm/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type members map[primitive.ObjectID]*access.Identity

func (m members) ResolveMember(_ context.Context, id primitive.ObjectID) (*access.Identity, error) {
	member, ok := m[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if member.Email == "disabled" {
		return nil, common.ErrAccountDisabled
	}
	return member, nil
}

func whoami(c fiber.Ctx) error {
	id := access.FromCtx(c)
	if id == nil {
		return basehdl.HandleResponse(c, fiber.Map{"role": "anonymous"}, nil)
	}
	return basehdl.HandleResponse(c, fiber.Map{"role": id.Role, "name": id.Name}, nil)
}

func get(t *testing.T, app *fiber.App, path, token string) (int, map[string]string) {
	t.Helper()
	status, env := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, path, nil, token))
	out := map[string]string{}
	if status == http.StatusOK {
		testutil.DecodeData(t, env, &out)
	} else {
		out["code"] = env.ErrorCode()
	}
	return status, out
}

func TestRequireChecksTokenAndRole(t *testing.T) {
	auth := testutil.NewAuth(nil)
	app := testutil.NewApp()
	app.Get("/admins", auth.Require(access.Admins, whoami))
	app.Get("/any", auth.Require(nil, whoami))

	status, body := get(t, app, "/admins", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", body["code"])

	status, _ = get(t, app, "/admins", "not-a-jwt")
	assert.Equal(t, http.StatusForbidden, status)

	sales := testutil.Token(t, testutil.Identity(access.RoleSales))
	status, body = get(t, app, "/admins", sales)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_003", body["code"])

	status, body = get(t, app, "/any", sales)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, access.RoleSales, body["role"])

	status, _ = get(t, app, "/admins", testutil.Token(t, testutil.Identity(access.RoleManager)))
	assert.Equal(t, http.StatusOK, status)
}

func TestOptionalAttachesValidIdentityOnly(t *testing.T) {
	auth := testutil.NewAuth(nil)
	app := testutil.NewApp()
	app.Get("/public", auth.Optional(whoami))

	status, body := get(t, app, "/public", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body["role"])

	status, body = get(t, app, "/public", "garbage")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body["role"])

	_, body = get(t, app, "/public", testutil.Token(t, testutil.Identity(access.RoleCounsellor)))
	assert.Equal(t, access.RoleCounsellor, body["role"])
}

func TestStrictUsesStoredMember(t *testing.T) {
	promoted := testutil.Identity(access.RoleSales)
	gone := testutil.Identity(access.RoleAdmin)
	disabled := testutil.Identity(access.RoleAdmin)
	store := members{
		promoted.ID: {ID: promoted.ID, Role: access.RoleManager, Name: "Renamed"},
		disabled.ID: {ID: disabled.ID, Role: access.RoleAdmin, Email: "disabled"},
	}
	auth := testutil.NewAuth(store)
	app := testutil.NewApp()
	app.Get("/strict", auth.Strict(access.Admins, whoami))

	status, body := get(t, app, "/strict", testutil.Token(t, promoted))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, access.RoleManager, body["role"])
	assert.Equal(t, "Renamed", body["name"])

	status, _ = get(t, app, "/strict", testutil.Token(t, gone))
	assert.Equal(t, http.StatusForbidden, status)

	status, body = get(t, app, "/strict", testutil.Token(t, disabled))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_002", body["code"])
}
