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

// BlogStore is the persistence surface the blog handlers need.
type BlogStore interface {
	Insert(ctx context.Context, blog models.Blog) (primitive.ObjectID, error)
	List(ctx context.Context, status string) ([]models.Blog, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (store.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// BlogController handles blog-related requests
type BlogController struct {
	Store BlogStore
}

// NewBlogController creates a new BlogController
func NewBlogController(s BlogStore) *BlogController {
	return &BlogController{Store: s}
}

type createBlogRequest struct {
	Title     string `json:"title" validate:"required"`
	Thumbnail string `json:"thumbnail"`
	Content   string `json:"content"`
	// Accepted from clients but overwritten: new posts always start draft.
	Status string `json:"status"`
}

// Create stores a new blog post as a draft (Admin only).
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var req createBlogRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "title is required")
		return
	}

	blog := models.Blog{
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Content:   req.Content,
		Status:    models.BlogDraft,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := bc.Store.Insert(ctx, blog)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error creating blog")
		return
	}
	blog.ID = id

	utils.RespondJSON(w, http.StatusCreated, blog)
}

// List returns blog posts newest-first. The status query filter only applies
// for known statuses; any other value is silently ignored.
func (bc *BlogController) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if !models.ValidBlogStatus(status) {
		status = ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	blogs, err := bc.Store.List(ctx, status)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching blogs")
		return
	}

	utils.RespondJSON(w, http.StatusOK, blogs)
}

// GetByID returns a single blog post.
func (bc *BlogController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	blog, err := bc.Store.FindByID(ctx, id)
	if err == store.ErrNotFound {
		utils.RespondError(w, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, blog)
}

// UpdateStatus toggles a blog post between draft and published (Admin only).
func (bc *BlogController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidBlogStatus(req.Status) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := bc.Store.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error updating blog status")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// Delete removes a blog post (Admin only).
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, err := bc.Store.Delete(ctx, id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error deleting blog")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"deletedCount": deleted})
}
