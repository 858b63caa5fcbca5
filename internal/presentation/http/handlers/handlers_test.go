package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageforge/pageforge-go/internal/application/export"
	"github.com/pageforge/pageforge-go/internal/application/services"
	"github.com/pageforge/pageforge-go/internal/domain/elements"
	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/domain/pages"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/manager"
	"github.com/pageforge/pageforge-go/internal/infrastructure/messaging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryPageRepo struct {
	pages map[string]*content.PageNode
}

func (r *memoryPageRepo) FindByID(id string) (*content.PageNode, error) {
	return r.pages[id], nil
}

func (r *memoryPageRepo) FindByFilename(filename string) (*content.PageNode, error) {
	for _, page := range r.pages {
		if page.Filename == filename {
			return page, nil
		}
	}
	return nil, nil
}

func (r *memoryPageRepo) FindAll() ([]*content.PageNode, error) {
	all := make([]*content.PageNode, 0, len(r.pages))
	for _, page := range r.pages {
		all = append(all, page)
	}
	return all, nil
}

func (r *memoryPageRepo) Store(page *content.PageNode) error {
	r.pages[page.ID] = page
	return nil
}

func (r *memoryPageRepo) Update(page *content.PageNode) error {
	r.pages[page.ID] = page
	return nil
}

func (r *memoryPageRepo) Delete(id string) error {
	delete(r.pages, id)
	return nil
}

type noopBroadcaster struct{}

func (noopBroadcaster) Register(client *messaging.PreviewClient)    {}
func (noopBroadcaster) Unregister(client *messaging.PreviewClient)  {}
func (noopBroadcaster) BroadcastPageUpdated(pageID, filename string) {}
func (noopBroadcaster) BroadcastPageDeleted(pageID string)           {}
func (noopBroadcaster) ConnectionCount() int                         { return 0 }

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = false
	cfg.OutputToConsole = false
	cfg.DefaultLevel = slog.LevelError
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return logger
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	previous := config.GeneratedPagesDir
	config.GeneratedPagesDir = t.TempDir()
	t.Cleanup(func() { config.GeneratedPagesDir = previous })

	logger := testLogger(t)
	cache := manager.NewManager(time.Hour, time.Hour, logger)
	t.Cleanup(cache.Close)

	repo := &memoryPageRepo{pages: make(map[string]*content.PageNode)}
	pageService := services.NewPageService(repo, cache, noopBroadcaster{}, logger)
	exportService := services.NewExportService(repo)
	renderService := services.NewRenderService(logger)

	pageHandlers := NewPageHandlers(pageService, exportService, logger)
	renderHandlers := NewRenderHandlers(renderService, logger)

	r := gin.New()
	r.GET("/api/v1/pages", pageHandlers.GetAllPages)
	r.GET("/api/v1/pages/:id", pageHandlers.GetPageByID)
	r.GET("/api/v1/pages/:id/html", pageHandlers.GetPageHTML)
	r.GET("/api/v1/pages/:id/export", pageHandlers.GetPageExport)
	r.POST("/api/v1/pages", pageHandlers.CreatePage)
	r.PUT("/api/v1/pages/:id", pageHandlers.UpdatePage)
	r.DELETE("/api/v1/pages/:id", pageHandlers.DeletePage)
	r.POST("/api/v1/render", renderHandlers.PostRender)
	return r
}

func performJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func samplePageDocument(t *testing.T, title string) map[string]any {
	t.Helper()
	page := pages.New(title, title)
	page.AddElement(elements.NewParagraph("Hello from " + title))
	doc, err := export.Encode(page)
	require.NoError(t, err)
	return doc
}

func TestCreatePage_ReturnsRecord(t *testing.T) {
	r := testRouter(t)

	w := performJSON(r, http.MethodPost, "/api/v1/pages", gin.H{
		"filename": "hello",
		"document": samplePageDocument(t, "Hello"),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var node content.PageNode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &node))
	assert.NotEmpty(t, node.ID)
	assert.Equal(t, "Hello", node.Title)
	assert.Equal(t, "hello", node.Filename)
}

func TestCreatePage_MalformedDocument(t *testing.T) {
	r := testRouter(t)

	w := performJSON(r, http.MethodPost, "/api/v1/pages", gin.H{
		"filename": "bad",
		"document": gin.H{"type": "Page", "content": "not-a-list"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreatePage_MissingFields(t *testing.T) {
	r := testRouter(t)

	w := performJSON(r, http.MethodPost, "/api/v1/pages", gin.H{"filename": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPageHTML_ServesRenderedOutput(t *testing.T) {
	r := testRouter(t)

	w := performJSON(r, http.MethodPost, "/api/v1/pages", gin.H{
		"filename": "render-me",
		"document": samplePageDocument(t, "Render Me"),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var node content.PageNode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &node))

	htmlResp := performJSON(r, http.MethodGet, "/api/v1/pages/"+node.ID+"/html", nil)
	require.Equal(t, http.StatusOK, htmlResp.Code)
	assert.Contains(t, htmlResp.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, htmlResp.Body.String(), "Hello from Render Me")
}

func TestGetPageHTML_UnknownPage(t *testing.T) {
	r := testRouter(t)

	w := performJSON(r, http.MethodGet, "/api/v1/pages/nope/html", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPageExport_RoundTrips(t *testing.T) {
	r := testRouter(t)

	w := performJSON(r, http.MethodPost, "/api/v1/pages", gin.H{
		"filename": "export-me",
		"document": samplePageDocument(t, "Export Me"),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var node content.PageNode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &node))

	exportResp := performJSON(r, http.MethodGet, "/api/v1/pages/"+node.ID+"/export", nil)
	require.Equal(t, http.StatusOK, exportResp.Code)

	decoded, err := export.FromJSON(exportResp.Body.String())
	require.NoError(t, err)
	page, ok := decoded.(*pages.Page)
	require.True(t, ok)
	assert.Equal(t, "Export Me", page.Title)
}

func TestDeletePage_RemovesRecord(t *testing.T) {
	r := testRouter(t)

	w := performJSON(r, http.MethodPost, "/api/v1/pages", gin.H{
		"filename": "doomed",
		"document": samplePageDocument(t, "Doomed"),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var node content.PageNode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &node))

	deleteResp := performJSON(r, http.MethodDelete, "/api/v1/pages/"+node.ID, nil)
	assert.Equal(t, http.StatusOK, deleteResp.Code)

	getResp := performJSON(r, http.MethodGet, "/api/v1/pages/"+node.ID, nil)
	assert.Equal(t, http.StatusNotFound, getResp.Code)
}

func TestPostRender_PreviewWithoutPersistence(t *testing.T) {
	r := testRouter(t)

	card := elements.NewCard("Preview", "No database rows were harmed")
	doc, err := export.Encode(card)
	require.NoError(t, err)

	w := performJSON(r, http.MethodPost, "/api/v1/render", gin.H{"document": doc})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, card.Render(), w.Body.String())

	listResp := performJSON(r, http.MethodGet, "/api/v1/pages", nil)
	require.Equal(t, http.StatusOK, listResp.Code)
	assert.Contains(t, listResp.Body.String(), `"count":0`)
}

func TestPostRender_MalformedDocument(t *testing.T) {
	r := testRouter(t)

	w := performJSON(r, http.MethodPost, "/api/v1/render", gin.H{
		"document": gin.H{"type": "Element", "content": 7},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuthMiddleware_BlocksUnauthenticated(t *testing.T) {
	prevSecret, prevPassword := config.JWTSecret, config.EditorPassword
	config.JWTSecret = "secret"
	config.EditorPassword = "pw"
	t.Cleanup(func() { config.JWTSecret, config.EditorPassword = prevSecret, prevPassword })

	logger := testLogger(t)
	authService := services.NewAuthService(logger)
	authHandlers := NewAuthHandlers(authService, logger)

	r := gin.New()
	r.POST("/login", authHandlers.PostLogin)
	protected := r.Group("/", authHandlers.AuthMiddleware())
	protected.GET("/secret", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := performJSON(r, http.MethodGet, "/secret", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	loginResp := performJSON(r, http.MethodPost, "/login", gin.H{"password": "pw"})
	require.Equal(t, http.StatusOK, loginResp.Code)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(loginResp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	authorized := httptest.NewRecorder()
	r.ServeHTTP(authorized, req)
	assert.Equal(t, http.StatusOK, authorized.Code)
}
