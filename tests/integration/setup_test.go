package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"financaspro/internal/handlers"
	"financaspro/internal/logger"
	"financaspro/internal/middleware"
	"financaspro/internal/services"
	"financaspro/internal/storage"
	"financaspro/internal/store"
	"financaspro/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Store  *store.Store
	Client *stubClient
	Router *gin.Engine
}

// stubClient replaces the remote completion API in integration tests.
type stubClient struct {
	chatFn       func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	transcribeFn func(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
}

func (s *stubClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if s.chatFn != nil {
		return s.chatFn(ctx, req)
	}
	return openai.ChatCompletionResponse{}, errors.New("chat completion not stubbed")
}

func (s *stubClient) CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	if s.transcribeFn != nil {
		return s.transcribeFn(ctx, req)
	}
	return openai.AudioResponse{}, errors.New("transcription not stubbed")
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&storage.Snapshot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	st := store.New(storage.NewGormGateway(db))

	client := &stubClient{}
	adviceService := services.NewAdviceService(client, "test-model")
	voiceService := services.NewVoiceService(client, "test-model", "test-transcribe")

	transactionHandler := handlers.NewTransactionHandler(st)
	fixedBillHandler := handlers.NewFixedBillHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)
	categoryHandler := handlers.NewCategoryHandler()
	insightHandler := handlers.NewInsightHandler(st, adviceService, voiceService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	fixedBills := v1.Group("/fixed-bills")
	fixedBills.POST("", fixedBillHandler.CreateFixedBill)
	fixedBills.GET("", fixedBillHandler.GetFixedBills)
	fixedBills.POST("/:id/toggle", fixedBillHandler.ToggleFixedBill)
	fixedBills.DELETE("/:id", fixedBillHandler.DeleteFixedBill)

	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/categories", categoryHandler.GetCategories)

	insights := v1.Group("/insights")
	insights.GET("/advice", insightHandler.GetAdvice)

	voice := v1.Group("/voice")
	voice.POST("/commands", insightHandler.CreateVoiceCommand)

	return &testApp{DB: db, Store: st, Client: client, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// requestAudio posts an audio capture as multipart form data.
func (app *testApp) requestAudio(t *testing.T, path string, audio []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", "capture.webm")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(audio); err != nil {
		t.Fatalf("failed to write audio: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// chatCompletion builds a single-choice chat completion response.
func chatCompletion(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

// mustStatus fails the test unless the recorder carries the expected code.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
