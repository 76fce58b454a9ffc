package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/dto"
	"github.com/GlebRadaev/seva/pkg/auth"
	"github.com/GlebRadaev/seva/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func NewMock(t *testing.T) (*CampaignHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func campaignForm(t *testing.T, goal string, files map[string][]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fields := map[string]string{
		"title":            "Heart surgery for Ravi",
		"description":      "Urgent surgery",
		"goal":             goal,
		"organizer":        "Meera",
		"beneficiaryName":  "Ravi",
		"medicalCondition": "Congenital heart defect",
		"email":            "meera@example.com",
		"phone":            "9876543210",
		"story":            "Ravi is five years old.",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, names := range files {
		for _, name := range names {
			fw, err := mw.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = fw.Write([]byte("content of " + name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestCreateHandler(t *testing.T) {
	t.Run("Multipart form with files", func(t *testing.T) {
		handler, service := NewMock(t)
		body, contentType := campaignForm(t, "200000", map[string][]string{
			"image":     {"ravi.jpg"},
			"documents": {"report.pdf", "bill.png"},
		})

		service.EXPECT().Create(gomock.Any(), 3, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, c *domain.Campaign, image *domain.Upload, docs []domain.Upload) (*domain.Campaign, error) {
				assert.Equal(t, "Heart surgery for Ravi", c.Title)
				assert.Equal(t, int64(200000), c.Goal)
				assert.Equal(t, "Ravi", c.BeneficiaryName)
				require.NotNil(t, image)
				assert.Equal(t, "ravi.jpg", image.Filename)
				content, err := io.ReadAll(image.Body)
				require.NoError(t, err)
				assert.Equal(t, "content of ravi.jpg", string(content))
				require.Len(t, docs, 2)
				assert.Equal(t, "report.pdf", docs[0].Filename)

				c.ID = 10
				c.CreatedBy = 3
				c.Image = ptr("/uploads/a.jpg")
				c.Documents = []string{"/uploads/b.pdf", "/uploads/c.png"}
				return c, nil
			})

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/campaigns", body), 3)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp dto.CampaignDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 10, resp.ID)
		assert.Equal(t, 3, resp.CreatedBy)
		assert.Equal(t, "/uploads/a.jpg", *resp.Image)
		assert.Len(t, resp.Documents, 2)
	})

	t.Run("Non-numeric goal", func(t *testing.T) {
		handler, _ := NewMock(t)
		body, contentType := campaignForm(t, "a lot", nil)
		req := withUser(httptest.NewRequest(http.MethodPost, "/api/campaigns", body), 3)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Not multipart", func(t *testing.T) {
		handler, _ := NewMock(t)
		req := withUser(httptest.NewRequest(http.MethodPost, "/api/campaigns", strings.NewReader(`{"title":"x"}`)), 3)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Validation error from service", func(t *testing.T) {
		handler, service := NewMock(t)
		body, contentType := campaignForm(t, "100", map[string][]string{"documents": {"virus.exe"}})
		service.EXPECT().Create(gomock.Any(), 3, gomock.Any(), gomock.Nil(), gomock.Any()).
			Return(nil, errors.Join(domain.ErrValidation, errors.New("only jpg, jpeg, png and pdf files are allowed")))

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/campaigns", body), 3)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("No user in context", func(t *testing.T) {
		handler, _ := NewMock(t)
		rr := httptest.NewRecorder()

		handler.Create(rr, httptest.NewRequest(http.MethodPost, "/api/campaigns", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListHandlers(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().List(gomock.Any()).Return([]domain.Campaign{{ID: 2}, {ID: 1}}, nil)
	service.EXPECT().ListMine(gomock.Any(), 3).Return(nil, errors.New("database error"))

	rr := httptest.NewRecorder()
	handler.List(rr, httptest.NewRequest(http.MethodGet, "/api/campaigns", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var list []dto.CampaignDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&list))
	assert.Equal(t, 2, list[0].ID)
	assert.NotNil(t, list[0].Documents)

	rr = httptest.NewRecorder()
	handler.ListMine(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/campaigns/my-campaigns", nil), 3))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Server error", resp.Message)
}

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Found",
			id:   "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), 5).Return(&domain.Campaign{ID: 5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing",
			id:   "6",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), 6).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed id",
			id:           "abc",
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.Get(rr, withID(httptest.NewRequest(http.MethodGet, "/api/campaigns/"+tt.id, nil), tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Owner update",
			body: `{"title":"New title","goal":5000}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), 3, 5, domain.CampaignPatch{Title: ptr("New title"), Goal: ptr(int64(5000))}).
					Return(&domain.Campaign{ID: 5, Title: "New title", Goal: 5000}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Protected fields are ignored",
			body: `{"createdBy":9,"totalAmount":100000,"image":"/x"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), 3, 5, domain.CampaignPatch{}).Return(&domain.Campaign{ID: 5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not the owner",
			body: `{"title":"Hijack"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), 3, 5, gomock.Any()).Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Invalid goal",
			body: `{"goal":0}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), 3, 5, gomock.Any()).Return(nil, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPut, "/api/campaigns/5", strings.NewReader(tt.body))
			req = withUser(withID(req, "5"), 3)
			rr := httptest.NewRecorder()

			handler.Update(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
