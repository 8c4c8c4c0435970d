package dto

import "github.com/google/uuid"

type CreateRoleRequest struct {
	Name          string      `json:"name"`
	Slug          string      `json:"slug"`
	Description   string      `json:"description"`
	PermissionIDs []uuid.UUID `json:"permission_ids"`
}

type UpdateRoleRequest struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	PermissionIDs []uuid.UUID `json:"permission_ids"`
}

type AssignRoleRequest struct {
	RoleID *uuid.UUID `json:"role_id"`
}
