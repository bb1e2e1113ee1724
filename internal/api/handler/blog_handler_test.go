package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
	"github.com/bit-milind42/Blog-Editor/internal/core/ports"
)

type stubBlogService struct {
	saveFn    func(ctx context.Context, input ports.SaveBlogInput) (*domain.Blog, bool, error)
	getFn     func(ctx context.Context, id string) (*domain.Blog, error)
	listPubFn func(ctx context.Context) ([]*domain.Blog, error)
	listAllFn func(ctx context.Context) ([]*domain.Blog, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubBlogService) Save(ctx context.Context, input ports.SaveBlogInput) (*domain.Blog, bool, error) {
	return s.saveFn(ctx, input)
}

func (s *stubBlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	return s.getFn(ctx, id)
}

func (s *stubBlogService) ListPublished(ctx context.Context) ([]*domain.Blog, error) {
	return s.listPubFn(ctx)
}

func (s *stubBlogService) ListAll(ctx context.Context) ([]*domain.Blog, error) {
	return s.listAllFn(ctx)
}

func (s *stubBlogService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func postJSON(path, body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestBlogHandler_SaveDraft_Created(t *testing.T) {
	stub := &stubBlogService{
		saveFn: func(_ context.Context, input ports.SaveBlogInput) (*domain.Blog, bool, error) {
			if input.TargetStatus != domain.StatusDraft {
				t.Fatalf("target status = %q, want draft", input.TargetStatus)
			}
			if input.TagsRaw != "go, web" {
				t.Fatalf("raw tags = %q, want comma string passed through", input.TagsRaw)
			}
			if input.Tags != nil {
				t.Fatal("string tags must arrive as TagsRaw, not Tags")
			}
			return &domain.Blog{ID: "6543210fedcba98765432100", Title: input.Title, Status: domain.StatusDraft}, true, nil
		},
	}
	handler := NewBlogHandler(stub)

	rec, c := postJSON("/blogs/save-draft", `{"title":"Hello","content":"World","tags":"go, web"}`)
	if err := handler.SaveDraft(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for a new draft, got %d", rec.Code)
	}

	var resp saveBlogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Draft saved" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Blog == nil || resp.Blog.ID == "" {
		t.Error("response must include the saved blog")
	}
}

func TestBlogHandler_SaveDraft_Updated(t *testing.T) {
	stub := &stubBlogService{
		saveFn: func(_ context.Context, input ports.SaveBlogInput) (*domain.Blog, bool, error) {
			if input.ID != "6543210fedcba98765432100" {
				t.Fatalf("id = %q not forwarded", input.ID)
			}
			return &domain.Blog{ID: input.ID, Title: input.Title, Status: domain.StatusDraft}, false, nil
		},
	}
	handler := NewBlogHandler(stub)

	rec, c := postJSON("/blogs/save-draft", `{"id":"6543210fedcba98765432100","title":"Hello","content":"v2"}`)
	if err := handler.SaveDraft(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an update, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Draft updated") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestBlogHandler_Publish_ArrayTags(t *testing.T) {
	stub := &stubBlogService{
		saveFn: func(_ context.Context, input ports.SaveBlogInput) (*domain.Blog, bool, error) {
			if input.TargetStatus != domain.StatusPublished {
				t.Fatalf("target status = %q, want published", input.TargetStatus)
			}
			if !reflect.DeepEqual(input.Tags, []string{"go", "mongo"}) {
				t.Fatalf("array tags = %v, want used as-is", input.Tags)
			}
			now := time.Now().UTC()
			return &domain.Blog{ID: "6543210fedcba98765432100", Status: domain.StatusPublished, PublishedAt: &now}, false, nil
		},
	}
	handler := NewBlogHandler(stub)

	rec, c := postJSON("/blogs/publish", `{"title":"Hello","content":"World","tags":["go","mongo"]}`)
	if err := handler.Publish(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Blog published") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestBlogHandler_Save_ServiceErrorPropagates(t *testing.T) {
	stub := &stubBlogService{
		saveFn: func(_ context.Context, _ ports.SaveBlogInput) (*domain.Blog, bool, error) {
			return nil, false, domain.ErrMissingFields
		},
	}
	handler := NewBlogHandler(stub)

	_, c := postJSON("/blogs/save-draft", `{"title":"","content":""}`)
	err := handler.SaveDraft(c)
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields to surface for the error handler, got %v", err)
	}
}

func TestBlogHandler_Get_Success(t *testing.T) {
	stub := &stubBlogService{
		getFn: func(_ context.Context, id string) (*domain.Blog, error) {
			if id != "6543210fedcba98765432100" {
				t.Fatalf("id = %q not forwarded", id)
			}
			return &domain.Blog{ID: id, Title: "Hello", Status: domain.StatusDraft}, nil
		},
	}
	handler := NewBlogHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blogs/6543210fedcba98765432100", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("6543210fedcba98765432100")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"title":"Hello"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestBlogHandler_Get_BadIDPropagates(t *testing.T) {
	stub := &stubBlogService{
		getFn: func(_ context.Context, _ string) (*domain.Blog, error) {
			return nil, domain.ErrInvalidBlogID
		},
	}
	handler := NewBlogHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blogs/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := handler.Get(c); !errors.Is(err, domain.ErrInvalidBlogID) {
		t.Fatalf("expected ErrInvalidBlogID, got %v", err)
	}
}

func TestBlogHandler_List(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubBlogService{
		listPubFn: func(_ context.Context) ([]*domain.Blog, error) {
			return []*domain.Blog{
				{ID: "6543210fedcba98765432100", Title: "Newest", Status: domain.StatusPublished, PublishedAt: &now},
			}, nil
		},
	}
	handler := NewBlogHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var blogs []*domain.Blog
	if err := json.Unmarshal(rec.Body.Bytes(), &blogs); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(blogs) != 1 || blogs[0].Title != "Newest" {
		t.Errorf("unexpected payload: %+v", blogs)
	}
}

func TestBlogHandler_Delete_Success(t *testing.T) {
	deleted := ""
	stub := &stubBlogService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewBlogHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/blogs/6543210fedcba98765432100", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("6543210fedcba98765432100")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "6543210fedcba98765432100" {
		t.Errorf("delete id = %q", deleted)
	}
	if !strings.Contains(rec.Body.String(), "Blog deleted successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestBlogHandler_Delete_NotFoundPropagates(t *testing.T) {
	stub := &stubBlogService{
		deleteFn: func(_ context.Context, _ string) error {
			return domain.ErrBlogNotFound
		},
	}
	handler := NewBlogHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/blogs/000000000000000000000000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("000000000000000000000000")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}
