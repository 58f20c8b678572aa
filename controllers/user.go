package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloodaid/models"
	"bloodaid/store"
	"bloodaid/utils"
)

// UserStore is the persistence surface the user handlers need.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindRoleByEmail(ctx context.Context, email string) (string, error)
	UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (store.UpdateResult, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (store.UpdateResult, error)
}

// UserController handles user-related requests
type UserController struct {
	Store UserStore
}

// NewUserController creates a new UserController
func NewUserController(s UserStore) *UserController {
	return &UserController{Store: s}
}

type createUserRequest struct {
	UID        string `json:"uid" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
}

// Create registers a user on first sign-in. Duplicate emails are rejected;
// new accounts default to an active donor.
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "uid and email are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := uc.Store.EmailExists(ctx, req.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		utils.RespondError(w, http.StatusConflict, "User already exists")
		return
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	now := time.Now()
	user := models.User{
		UID:        req.UID,
		Email:      req.Email,
		Name:       req.Name,
		Avatar:     avatar,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
		Role:       models.RoleDonor,
		Status:     models.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := uc.Store.Insert(ctx, user)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error creating user")
		return
	}
	user.ID = id

	utils.RespondJSON(w, http.StatusCreated, user)
}

// ListAll returns every user, unfiltered and unpaginated.
func (uc *UserController) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := uc.Store.FindAll(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}

	utils.RespondJSON(w, http.StatusOK, users)
}

// GetRole returns the stored role for an email, matched case-insensitively.
// An unknown email answers 200 with a null role rather than 404 so clients
// never need an error branch.
func (uc *UserController) GetRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	role, err := uc.Store.FindRoleByEmail(ctx, email)
	if err == store.ErrNotFound {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"role": nil})
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"role": role})
}

// GetByEmail returns a single user by email.
func (uc *UserController) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := uc.Store.FindByEmail(ctx, email)
	if err == store.ErrNotFound {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name       *string `json:"name"`
	Avatar     *string `json:"avatar"`
	BloodGroup *string `json:"bloodGroup"`
	District   *string `json:"district"`
	Upazila    *string `json:"upazila"`
}

func (req *updateProfileRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.BloodGroup != nil {
		fields["blood_group"] = *req.BloodGroup
	}
	if req.District != nil {
		fields["district"] = *req.District
	}
	if req.Upazila != nil {
		fields["upazila"] = *req.Upazila
	}
	return fields
}

// UpdateProfile merges the provided profile fields into the user with the
// given email. Role and status are not reachable from this route.
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := req.fields()
	fields["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := uc.Store.UpdateByEmail(ctx, email, fields)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error updating profile")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

type updateUserRequest struct {
	updateProfileRequest
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// UpdateByID overwrites the provided fields on the user with the given id.
func (uc *UserController) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.Role != nil && !models.ValidRole(*req.Role) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid role")
		return
	}
	if req.Status != nil && !models.ValidUserStatus(*req.Status) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	fields := req.fields()
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	fields["updated_at"] = time.Now()

	uc.applyUpdate(w, id, fields)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus sets the account status (active or blocked) by user id.
func (uc *UserController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidUserStatus(req.Status) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	uc.applyUpdate(w, id, map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now(),
	})
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateRole sets the role (donor, volunteer or admin) by user id.
func (uc *UserController) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req updateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidRole(req.Role) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	uc.applyUpdate(w, id, map[string]interface{}{
		"role":       req.Role,
		"updated_at": time.Now(),
	})
}

func (uc *UserController) applyUpdate(w http.ResponseWriter, id primitive.ObjectID, fields map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := uc.Store.UpdateByID(ctx, id, fields)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error updating user")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
