package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqqnoor/aunichance/internal/advisor"
	"github.com/aqqnoor/aunichance/internal/db"
	"github.com/aqqnoor/aunichance/internal/llm"
	"github.com/aqqnoor/aunichance/internal/types"
)

// fakeGateway backs the advisor service with in-memory state.
type fakeGateway struct {
	programs map[uuid.UUID]*db.Program
	tips     map[uuid.UUID][]db.SavedTip
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		programs: make(map[uuid.UUID]*db.Program),
		tips:     make(map[uuid.UUID][]db.SavedTip),
	}
}

func (g *fakeGateway) GetProgram(_ context.Context, id uuid.UUID) (*db.Program, error) {
	return g.programs[id], nil
}

func (g *fakeGateway) UpsertRequirements(context.Context, uuid.UUID, *types.RequirementRecord) error {
	return nil
}

func (g *fakeGateway) UpsertDeadlines(context.Context, uuid.UUID, []types.DeadlineRecord) error {
	return nil
}

func (g *fakeGateway) AppendTip(_ context.Context, id uuid.UUID, tip types.Tip) error {
	g.tips[id] = append(g.tips[id], db.SavedTip{ID: uuid.New(), ProgramID: id, Tip: tip})
	return nil
}

func (g *fakeGateway) ListTips(_ context.Context, id uuid.UUID, _ int) ([]db.SavedTip, error) {
	return g.tips[id], nil
}

type fakeClient struct {
	response string
}

func (f *fakeClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return f.response, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

const tipResponse = `{
	"title": "Raise your score",
	"description": "Structured weekly practice.",
	"timeframe": "2-3 months",
	"resources": ["free course"]
}`

func testServer(gateway *fakeGateway, llmResponse string) *Server {
	service := advisor.NewService(gateway, &fakeClient{response: llmResponse}, advisor.Options{})
	return New(Config{Port: 0}, nil, service)
}

func storedProgram(gateway *fakeGateway) uuid.UUID {
	id := uuid.New()
	gateway.programs[id] = &db.Program{
		ID:             id,
		Title:          "MSc Computer Science",
		UniversityName: "ETH Zurich",
		CountryCode:    "CH",
		Requirements: map[string]any{
			"ielts": map[string]any{"min": 6.5},
		},
	}
	return id
}

func TestHandleGenerateTips(t *testing.T) {
	t.Run("Invalid program id is 400", func(t *testing.T) {
		srv := testServer(newFakeGateway(), tipResponse)

		req := httptest.NewRequest(http.MethodPost, "/programs/not-a-uuid/tips", strings.NewReader("{}"))
		req.SetPathValue("id", "not-a-uuid")
		w := httptest.NewRecorder()
		srv.handleGenerateTips(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed body is 400", func(t *testing.T) {
		srv := testServer(newFakeGateway(), tipResponse)
		id := uuid.New().String()

		req := httptest.NewRequest(http.MethodPost, "/programs/"+id+"/tips", strings.NewReader("{not json"))
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		srv.handleGenerateTips(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Out-of-range score is 400", func(t *testing.T) {
		srv := testServer(newFakeGateway(), tipResponse)
		id := uuid.New().String()

		req := httptest.NewRequest(http.MethodPost, "/programs/"+id+"/tips", strings.NewReader(`{"ielts": 12}`))
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		srv.handleGenerateTips(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GPA over the declared scale is 400", func(t *testing.T) {
		gateway := newFakeGateway()
		programID := storedProgram(gateway)
		srv := testServer(gateway, tipResponse)

		req := httptest.NewRequest(http.MethodPost, "/programs/"+programID.String()+"/tips",
			strings.NewReader(`{"gpa": 4.5, "gpa_scale": 4}`))
		req.SetPathValue("id", programID.String())
		w := httptest.NewRecorder()
		srv.handleGenerateTips(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown program is 404", func(t *testing.T) {
		srv := testServer(newFakeGateway(), tipResponse)
		id := uuid.New().String()

		req := httptest.NewRequest(http.MethodPost, "/programs/"+id+"/tips", strings.NewReader(`{"ielts": 6.0}`))
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		srv.handleGenerateTips(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Gap yields generated tips", func(t *testing.T) {
		gateway := newFakeGateway()
		programID := storedProgram(gateway)
		srv := testServer(gateway, tipResponse)

		req := httptest.NewRequest(http.MethodPost, "/programs/"+programID.String()+"/tips",
			strings.NewReader(`{"ielts": 6.0}`))
		req.SetPathValue("id", programID.String())
		w := httptest.NewRecorder()
		srv.handleGenerateTips(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Tips []types.Tip `json:"tips"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Tips, 1)
		assert.Equal(t, "ielts", body.Tips[0].GapType)
		assert.Equal(t, "Raise your score", body.Tips[0].Title)
	})
}

func TestHandleListTips(t *testing.T) {
	t.Run("Unknown program is 404", func(t *testing.T) {
		srv := testServer(newFakeGateway(), tipResponse)
		id := uuid.New().String()

		req := httptest.NewRequest(http.MethodGet, "/programs/"+id+"/tips", nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		srv.handleListTips(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Saved tips returned", func(t *testing.T) {
		gateway := newFakeGateway()
		programID := storedProgram(gateway)
		gateway.tips[programID] = []db.SavedTip{
			{ID: uuid.New(), ProgramID: programID, Tip: types.Tip{Title: "old tip"}},
		}
		srv := testServer(gateway, tipResponse)

		req := httptest.NewRequest(http.MethodGet, "/programs/"+programID.String()+"/tips", nil)
		req.SetPathValue("id", programID.String())
		w := httptest.NewRecorder()
		srv.handleListTips(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "old tip")
	})

	t.Run("No saved tips is an empty list, not null", func(t *testing.T) {
		gateway := newFakeGateway()
		programID := storedProgram(gateway)
		srv := testServer(gateway, tipResponse)

		req := httptest.NewRequest(http.MethodGet, "/programs/"+programID.String()+"/tips", nil)
		req.SetPathValue("id", programID.String())
		w := httptest.NewRecorder()
		srv.handleListTips(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"tips":[]`)
	})
}

func TestHandleParseDocument(t *testing.T) {
	t.Run("Missing URL is 400", func(t *testing.T) {
		srv := testServer(newFakeGateway(), "{}")

		req := httptest.NewRequest(http.MethodPost, "/documents/parse", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		srv.handleParseDocument(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed program id is 400", func(t *testing.T) {
		srv := testServer(newFakeGateway(), "{}")

		req := httptest.NewRequest(http.MethodPost, "/documents/parse",
			strings.NewReader(`{"url": "https://uni.edu/admission", "program_id": "nope"}`))
		w := httptest.NewRecorder()
		srv.handleParseDocument(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unreachable source is 502", func(t *testing.T) {
		srv := testServer(newFakeGateway(), "{}")

		dead := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		dead.Close() // nothing listens there anymore

		req := httptest.NewRequest(http.MethodPost, "/documents/parse",
			strings.NewReader(`{"url": "`+dead.URL+`/admission"}`))
		w := httptest.NewRecorder()
		srv.handleParseDocument(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(newFakeGateway(), "{}")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
