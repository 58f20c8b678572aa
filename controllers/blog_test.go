package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloodaid/models"
	"bloodaid/store"
)

func TestBlogCreate_ForcesDraft(t *testing.T) {
	fake := &fakeBlogStore{}
	bc := NewBlogController(fake)

	body := `{"title":"Why Donate","content":"...","status":"published"}`
	rec := httptest.NewRecorder()
	bc.Create(rec, newRequest(t, http.MethodPost, "/blogs", body, nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, fake.inserted, 1)
	assert.Equal(t, models.BlogDraft, fake.inserted[0].Status)
}

func TestBlogCreate_MissingTitle(t *testing.T) {
	bc := NewBlogController(&fakeBlogStore{})

	rec := httptest.NewRecorder()
	bc.Create(rec, newRequest(t, http.MethodPost, "/blogs", `{"content":"..."}`, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlogList_StatusFilter(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFilter string
	}{
		{"published filter applies", "?status=published", models.BlogPublished},
		{"draft filter applies", "?status=draft", models.BlogDraft},
		{"unknown value silently ignored", "?status=archived", ""},
		{"no filter", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeBlogStore{}
			bc := NewBlogController(fake)

			rec := httptest.NewRecorder()
			bc.List(rec, newRequest(t, http.MethodGet, "/blogs"+tc.query, "", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.wantFilter, fake.lastStatus)
		})
	}
}

func TestBlogGetByID(t *testing.T) {
	id := primitive.NewObjectID()
	fake := &fakeBlogStore{blogs: []models.Blog{{ID: id, Title: "Why Donate"}}}
	bc := NewBlogController(fake)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		bc.GetByID(rec, newRequest(t, http.MethodGet, "/blogs/"+id.Hex(), "", map[string]string{"id": id.Hex()}))

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.Blog
		decodeBody(t, rec, &got)
		assert.Equal(t, "Why Donate", got.Title)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		bc.GetByID(rec, newRequest(t, http.MethodGet, "/blogs/abc", "", map[string]string{"id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("absent", func(t *testing.T) {
		other := primitive.NewObjectID()
		rec := httptest.NewRecorder()
		bc.GetByID(rec, newRequest(t, http.MethodGet, "/blogs/"+other.Hex(), "", map[string]string{"id": other.Hex()}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBlogUpdateStatus(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("valid status", func(t *testing.T) {
		fake := &fakeBlogStore{updateRes: store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}}
		bc := NewBlogController(fake)

		rec := httptest.NewRecorder()
		bc.UpdateStatus(rec, newRequest(t, http.MethodPatch, "/blogs/status/"+id.Hex(), `{"status":"published"}`, map[string]string{"id": id.Hex()}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.BlogPublished, fake.lastStatus)
	})

	t.Run("invalid status", func(t *testing.T) {
		fake := &fakeBlogStore{}
		bc := NewBlogController(fake)

		rec := httptest.NewRecorder()
		bc.UpdateStatus(rec, newRequest(t, http.MethodPatch, "/blogs/status/"+id.Hex(), `{"status":"archived"}`, map[string]string{"id": id.Hex()}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, fake.lastStatus)
	})
}

func TestBlogDelete(t *testing.T) {
	id := primitive.NewObjectID()
	fake := &fakeBlogStore{deleted: 1}
	bc := NewBlogController(fake)

	rec := httptest.NewRecorder()
	bc.Delete(rec, newRequest(t, http.MethodDelete, "/blogs/"+id.Hex(), "", map[string]string{"id": id.Hex()}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, fake.lastID)
}
