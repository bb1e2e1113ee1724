package handler

import (
	"encoding/json"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
)

// messageResponse is the envelope for confirmation-only responses.
type messageResponse struct {
	Message string `json:"message"`
}

// tagsField accepts either a JSON array of strings or a single
// comma-delimited string (the legacy editor sends the latter). An array is
// used as-is; a string is split and cleaned by the service.
type tagsField struct {
	List   []string
	Raw    string
	IsList bool
}

func (t *tagsField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		t.IsList = true
		return json.Unmarshal(data, &t.List)
	}
	return json.Unmarshal(data, &t.Raw)
}

// saveBlogRequest is the shared body of POST /blogs/save-draft and
// POST /blogs/publish. ID is optional; title/content presence is enforced by
// the service so validation failures share one message across both routes.
type saveBlogRequest struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Tags    tagsField `json:"tags"`
}

type saveBlogResponse struct {
	Message string       `json:"message"`
	Blog    *domain.Blog `json:"blog"`
}
