package handler

import (
	"context"
	"net/http"
	"time"

	"shopline/internal/domain"
	"shopline/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the slice of the user repository this handler needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, u *models.User) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
}

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// Register is idempotent by email: registering an existing address is a no-op
// that reports existence rather than an error.
func (h *UserHandler) Register(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	ctx := c.Request.Context()
	existing, err := h.users.FindByEmail(ctx, body.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}

	user := &models.User{
		Email:     body.Email,
		Role:      "",
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}
	if err := h.users.Insert(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// List returns a single user when ?email= is given (an empty object when the
// address is unknown), otherwise every user.
func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if email := c.Query("email"); email != "" {
		user, err := h.users.FindByEmail(ctx, email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	users, err := h.users.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetRole(c *gin.Context) {
	role, err := h.users.RoleByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// UpdateRole lets an admin set status and/or role on a user. Approval flows
// typically set both in one call.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var body struct {
		Status string `json:"status"`
		Role   string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || (body.Status == "" && body.Role == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status or role is required"})
		return
	}

	fields := bson.M{}
	if body.Status != "" {
		fields["status"] = body.Status
	}
	if body.Role != "" {
		fields["role"] = body.Role
	}

	matched, err := h.users.UpdateByID(c.Request.Context(), id, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched})
}
