package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pavitra93/go-client-registry/shared/middleware"
	"github.com/pavitra93/go-client-registry/shared/models"
	"github.com/pavitra93/go-client-registry/shared/repository"
	"github.com/pavitra93/go-client-registry/shared/utils"
)

// RenameUserRequest represents the rename user request
type RenameUserRequest struct {
	Username    string `json:"username" binding:"required"`
	NewUsername string `json:"new_username" binding:"required"`
}

// CreateClientRequest represents the create client request
type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	CompanyID uint   `json:"company_id" binding:"required"`
}

// UpdateClientRequest represents the partial client update. Only these three
// fields may be patched; anything else in the body is rejected.
type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// handleListUsers handles listing usernames, optionally filtered by exact
// username via the query string. The body is a bare array of usernames.
func handleListUsers(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context(), c.Query("username"))
		if err != nil {
			logStoreError(c, "list users", err)
			utils.InternalServerErrorResponse(c, "Failed to fetch users")
			return
		}

		usernames := make([]string, 0, len(list))
		for _, u := range list {
			usernames = append(usernames, u.Username)
		}
		c.JSON(http.StatusOK, usernames)
	}
}

// handleRenameUser handles renaming a user identified by its current username
func handleRenameUser(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RenameUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, "Both username and new_username are required")
			return
		}

		err := users.Rename(c.Request.Context(), req.Username, req.NewUsername)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, repository.ErrDuplicate):
			utils.ConflictResponse(c, "Username already exists")
		case err != nil:
			logStoreError(c, "rename user", err)
			utils.InternalServerErrorResponse(c, "Failed to update user")
		default:
			utils.MessageResponse(c, "User updated successfully")
		}
	}
}

// handleCreateClient handles client creation
func handleCreateClient(clients repository.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateClientRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, "Incomplete data provided")
			return
		}

		// Pre-check the unique email for a friendlier error; the unique
		// index still backstops races at commit.
		existing, err := clients.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			logStoreError(c, "find client by email", err)
			utils.InternalServerErrorResponse(c, "Failed to create client")
			return
		}
		if existing != nil {
			utils.BadRequestResponse(c, "Client with this email already exists")
			return
		}

		client := models.Client{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			UserID:    req.UserID,
			CompanyID: req.CompanyID,
		}

		err = clients.Create(c.Request.Context(), &client)
		switch {
		case errors.Is(err, repository.ErrReferenceNotFound):
			utils.NotFoundResponse(c, "Company or user not found")
		case errors.Is(err, repository.ErrDuplicate):
			utils.BadRequestResponse(c, "Client with this email already exists")
		case err != nil:
			logStoreError(c, "create client", err)
			utils.InternalServerErrorResponse(c, "Failed to create client")
		default:
			utils.MessageResponse(c, "Client created successfully")
		}
	}
}

// handleUpdateClient handles partial updates of a client. The body is decoded
// strictly: keys outside the updatable set are a 400, not a silent write.
func handleUpdateClient(clients repository.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
		if err != nil {
			utils.NotFoundResponse(c, "Client not found")
			return
		}

		var req UpdateClientRequest
		dec := json.NewDecoder(c.Request.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			utils.BadRequestResponse(c, decodeErrorMessage(err))
			return
		}

		client, err := clients.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			logStoreError(c, "get client", err)
			utils.InternalServerErrorResponse(c, "Failed to update client")
			return
		}
		if client == nil {
			utils.NotFoundResponse(c, "Client not found")
			return
		}

		updates := map[string]any{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Email != nil {
			updates["email"] = *req.Email
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}

		err = clients.Update(c.Request.Context(), client.ID, updates)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFoundResponse(c, "Client not found")
		case errors.Is(err, repository.ErrDuplicate):
			utils.ConflictResponse(c, "Client with this email already exists")
		case err != nil:
			logStoreError(c, "update client", err)
			utils.InternalServerErrorResponse(c, "Failed to update client")
		default:
			utils.MessageResponse(c, "Client updated successfully")
		}
	}
}

// decodeErrorMessage turns a strict-decode failure into a caller-facing
// message, surfacing the offending key on unknown-field errors.
func decodeErrorMessage(err error) string {
	const unknownField = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, unknownField) {
		return "Unknown field: " + strings.Trim(strings.TrimPrefix(msg, unknownField), `"`)
	}
	return "Invalid request format"
}

func logStoreError(c *gin.Context, op string, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"op":         op,
	}).WithError(err).Error("store call failed")
}
