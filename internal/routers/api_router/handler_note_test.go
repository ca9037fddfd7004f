package api_router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haierkeys/note-organizer-service/internal/app"
	"github.com/haierkeys/note-organizer-service/internal/model"

	"github.com/creasty/defaults"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// envelope 测试用的统一响应结构
type envelope struct {
	Code    int             `json:"code"`
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *app.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	for _, key := range []string{"Note", "Folder", "Tag", "NoteTag"} {
		require.NoError(t, model.AutoMigrate(db, key))
	}

	cfg := &app.AppConfig{}
	require.NoError(t, defaults.Set(cfg))

	a, err := app.NewApp(cfg, zap.NewNop(), db)
	require.NoError(t, err)

	r := gin.New()
	noteHandler := NewNoteHandler(a)
	r.GET("/api/notes", noteHandler.List)
	r.GET("/api/notes/:id", noteHandler.Get)
	r.POST("/api/notes", noteHandler.Create)
	r.PUT("/api/notes/:id", noteHandler.Update)
	r.DELETE("/api/notes/:id", noteHandler.Delete)
	return r, a
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNoteHandlerCreateMissingTitle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/notes", map[string]any{"content": "no title"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 10001, res.Code)
	assert.False(t, res.Status)
}

func TestNoteHandlerCreateReturnsLocation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/notes", map[string]any{
		"title":   "first",
		"content": "body",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/api/notes/")

	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Status)

	var note struct {
		ID    int64             `json:"id"`
		Title string            `json:"title"`
		Tags  []json.RawMessage `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &note))
	assert.Greater(t, note.ID, int64(0))
	assert.Equal(t, "first", note.Title)
	// 无标签时也必须返回空数组而不是 null
	assert.NotNil(t, note.Tags)
	assert.Contains(t, string(res.Data), `"tags":[]`)
}

func TestNoteHandlerGetNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/notes/9999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 20000, res.Code)
}

func TestNoteHandlerGetInvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/notes/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteHandlerDeleteMissingIsNoContent(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodDelete, "/api/notes/424242", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestNoteHandlerListAndFilter(t *testing.T) {
	r, a := newTestRouter(t)

	require.NoError(t, a.DB.Create(&model.Tag{ID: 1, Name: "work"}).Error)

	w := doJSON(r, http.MethodPost, "/api/notes", map[string]any{
		"title": "tagged", "tags": []int64{1},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/notes", map[string]any{
		"title": "plain",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(res.Data, &list))
	assert.Len(t, list, 2)

	w = doJSON(r, http.MethodGet, "/api/notes?tagId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NoError(t, json.Unmarshal(res.Data, &list))
	require.Len(t, list, 1)
	assert.Contains(t, string(list[0]), `"title":"tagged"`)
}

func TestNoteHandlerUpdateReplacesTags(t *testing.T) {
	r, a := newTestRouter(t)

	require.NoError(t, a.DB.Create(&model.Tag{ID: 1, Name: "work"}).Error)
	require.NoError(t, a.DB.Create(&model.Tag{ID: 2, Name: "home"}).Error)

	w := doJSON(r, http.MethodPost, "/api/notes", map[string]any{
		"title": "n", "tags": []int64{1},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &created))

	w = doJSON(r, http.MethodPut, "/api/notes/1", map[string]any{
		"title": "n2", "tags": []int64{2},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, string(res.Data), `"title":"n2"`)
	assert.Contains(t, string(res.Data), `"name":"home"`)
	assert.NotContains(t, string(res.Data), `"name":"work"`)
}
