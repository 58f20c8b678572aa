package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloodaid/models"
	"bloodaid/store"
)

// newRequest builds a request with a JSON body and mux path variables.
func newRequest(t *testing.T, method, target, body string, vars map[string]string) *http.Request {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

type fakeUserStore struct {
	users     []models.User
	insertErr error
	listErr   error
	roleErr   error
	updateErr error

	inserted   []models.User
	updateRes  store.UpdateResult
	lastEmail  string
	lastID     primitive.ObjectID
	lastFields map[string]interface{}
}

func (f *fakeUserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.inserted = append(f.inserted, user)
	return primitive.NewObjectID(), nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.listErr != nil {
		return false, f.listErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	return f.users, f.listErr
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserStore) FindRoleByEmail(ctx context.Context, email string) (string, error) {
	if f.roleErr != nil {
		return "", f.roleErr
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u.Role, nil
		}
	}
	return "", store.ErrNotFound
}

func (f *fakeUserStore) UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (store.UpdateResult, error) {
	f.lastEmail = email
	f.lastFields = fields
	return f.updateRes, f.updateErr
}

func (f *fakeUserStore) UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (store.UpdateResult, error) {
	f.lastID = id
	f.lastFields = fields
	return f.updateRes, f.updateErr
}

type fakeDonationStore struct {
	requests  []models.DonationRequest
	insertErr error
	listErr   error
	updateErr error
	deleteErr error

	inserted   []models.DonationRequest
	replaced   []models.DonationRequest
	updateRes  store.UpdateResult
	deleted    int64
	lastFilter string
	lastID     primitive.ObjectID
	lastFields map[string]interface{}
}

func (f *fakeDonationStore) Insert(ctx context.Context, request models.DonationRequest) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.inserted = append(f.inserted, request)
	return primitive.NewObjectID(), nil
}

func (f *fakeDonationStore) List(ctx context.Context, requesterEmail string) ([]models.DonationRequest, error) {
	f.lastFilter = requesterEmail
	return f.requests, f.listErr
}

func (f *fakeDonationStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.DonationRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return models.DonationRequest{}, store.ErrNotFound
}

func (f *fakeDonationStore) UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (store.UpdateResult, error) {
	f.lastID = id
	f.lastFields = fields
	return f.updateRes, f.updateErr
}

func (f *fakeDonationStore) Replace(ctx context.Context, id primitive.ObjectID, request models.DonationRequest) (store.UpdateResult, error) {
	f.lastID = id
	request.ID = id
	f.replaced = append(f.replaced, request)
	return f.updateRes, f.updateErr
}

func (f *fakeDonationStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	f.lastID = id
	return f.deleted, f.deleteErr
}

type fakeBlogStore struct {
	blogs     []models.Blog
	insertErr error
	listErr   error
	updateErr error
	deleteErr error

	inserted   []models.Blog
	updateRes  store.UpdateResult
	deleted    int64
	lastStatus string
	lastID     primitive.ObjectID
}

func (f *fakeBlogStore) Insert(ctx context.Context, blog models.Blog) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.inserted = append(f.inserted, blog)
	return primitive.NewObjectID(), nil
}

func (f *fakeBlogStore) List(ctx context.Context, status string) ([]models.Blog, error) {
	f.lastStatus = status
	return f.blogs, f.listErr
}

func (f *fakeBlogStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	for _, b := range f.blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Blog{}, store.ErrNotFound
}

func (f *fakeBlogStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (store.UpdateResult, error) {
	f.lastID = id
	f.lastStatus = status
	return f.updateRes, f.updateErr
}

func (f *fakeBlogStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	f.lastID = id
	return f.deleted, f.deleteErr
}

type fakeFundingStore struct {
	funds     []models.Funding
	total     float64
	count     int64
	insertErr error
	listErr   error
	countErr  error
	totalErr  error

	inserted  []models.Funding
	lastSkip  int64
	lastLimit int64
}

func (f *fakeFundingStore) Insert(ctx context.Context, funding models.Funding) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.inserted = append(f.inserted, funding)
	return primitive.NewObjectID(), nil
}

func (f *fakeFundingStore) List(ctx context.Context, skip, limit int64) ([]models.Funding, error) {
	f.lastSkip = skip
	f.lastLimit = limit
	return f.funds, f.listErr
}

func (f *fakeFundingStore) Count(ctx context.Context) (int64, error) {
	return f.count, f.countErr
}

func (f *fakeFundingStore) TotalAmount(ctx context.Context) (float64, error) {
	return f.total, f.totalErr
}

type fakeGateway struct {
	secret    string
	err       error
	gotAmount int64
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	f.gotAmount = amountCents
	return f.secret, f.err
}

type fakeNotifier struct {
	receiptTo     string
	receiptAmount float64
	statusTo      string
	statusValue   string
}

func (f *fakeNotifier) FundingReceipt(toEmail, name string, amount float64) {
	f.receiptTo = toEmail
	f.receiptAmount = amount
}

func (f *fakeNotifier) RequestStatusChanged(toEmail, recipientName, status string) {
	f.statusTo = toEmail
	f.statusValue = status
}
