package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JusticeOpara/real-estate-hub/config"
	"github.com/JusticeOpara/real-estate-hub/logger"
	"github.com/JusticeOpara/real-estate-hub/middleware"
	"github.com/JusticeOpara/real-estate-hub/models"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

type UserController struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewUserController(cfg *config.Config) *UserController {
	return &UserController{
		cfg:        cfg,
		collection: config.GetCollection(cfg.UsersCollection),
	}
}

func (uc *UserController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	role := req.Role
	if role == "" {
		role = models.RoleBuyer
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("failed to hash password")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to create user")
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  hashedPassword,
		Role:      role,
		Phone:     req.Phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The unique email index decides duplicates, not a lookup beforehand.
	if _, err := uc.collection.InsertOne(context.Background(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.Fail(c, http.StatusConflict, "User with this email already exists")
		}
		logger.Error().Err(err).Msg("failed to insert user")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to create user")
	}

	token, err := utils.GenerateJWT(uc.cfg.JWTSecret, uc.cfg.JWTExpiryHours, user.ID, user.Email, user.Role)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate token")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to generate token")
	}

	return utils.OKMessage(c, http.StatusCreated, "User registered successfully", models.AuthResponse{
		Token: token,
		User:  user,
	})
}

func (uc *UserController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		return utils.Fail(c, http.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return utils.Fail(c, http.StatusUnauthorized, "Account is deactivated")
	}
	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return utils.Fail(c, http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.GenerateJWT(uc.cfg.JWTSecret, uc.cfg.JWTExpiryHours, user.ID, user.Email, user.Role)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate token")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to generate token")
	}

	return utils.OK(c, http.StatusOK, models.AuthResponse{
		Token: token,
		User:  user,
	})
}

func (uc *UserController) Me(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	var user models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"_id": p.ID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "User not found")
		}
		logger.Error().Err(err).Msg("failed to fetch user")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch profile")
	}

	return utils.OK(c, http.StatusOK, echo.Map{"user": user})
}

func (uc *UserController) UpdateProfile(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.Phone != "" {
		updateDoc["phone"] = req.Phone
	}
	if req.Avatar != "" {
		updateDoc["avatar"] = req.Avatar
	}

	var user models.User
	err := uc.collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": p.ID},
		bson.M{"$set": updateDoc},
		optionsAfter(),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "User not found")
		}
		logger.Error().Err(err).Msg("failed to update profile")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to update profile")
	}

	return utils.OKMessage(c, http.StatusOK, "Profile updated successfully", echo.Map{"user": user})
}

func (uc *UserController) ChangePassword(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	var user models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"_id": p.ID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "User not found")
		}
		logger.Error().Err(err).Msg("failed to fetch user")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to change password")
	}

	if err := utils.CheckPassword(user.Password, req.CurrentPassword); err != nil {
		return utils.Fail(c, http.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		logger.Error().Err(err).Msg("failed to hash password")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to change password")
	}

	_, err = uc.collection.UpdateOne(
		context.Background(),
		bson.M{"_id": p.ID},
		bson.M{"$set": bson.M{"password": hashed, "updatedAt": time.Now()}},
	)
	if err != nil {
		logger.Error().Err(err).Msg("failed to update password")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to change password")
	}

	return utils.OKMessage(c, http.StatusOK, "Password changed successfully", nil)
}
