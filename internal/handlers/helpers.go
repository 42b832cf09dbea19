package handlers

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stockyard/internal/common"
)

// tenantID pulls the caller's tenant from the authenticated request
// context. The auth middleware guarantees it is present on protected
// routes; a miss means the route was wired without authentication.
func tenantID(c echo.Context) (uuid.UUID, bool) {
	return common.GetTenantID(c.Request().Context())
}

// parseStatus maps the frontend-facing status value onto is_active.
// An absent status defaults to active; an empty string is rejected so a
// malformed body cannot silently reactivate a deactivated resource.
func parseStatus(status *string) (bool, error) {
	if status == nil {
		return true, nil
	}
	if err := common.ValidateEnum(*status, "status", "active", "inactive"); err != nil {
		return false, err
	}
	return *status == "active", nil
}

// optionalUUID parses an optional query-string filter.
func optionalUUID(c echo.Context, param string) (*uuid.UUID, error) {
	raw := c.QueryParam(param)
	if raw == "" {
		return nil, nil
	}
	id, err := common.ParseUUID(raw, param)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// pagination reads limit/offset query parameters; bounds are enforced in
// the service layer.
func pagination(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
