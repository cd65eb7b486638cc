package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"financaspro/internal/models"
	"financaspro/internal/store"
	"financaspro/internal/testutil"
	"financaspro/internal/validator"
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(testutil.SetupTestGateway(t))
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetTransactions)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

// --- tests ---

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		s := newTestStore(t)
		r := setupTransactionRouter(NewTransactionHandler(s))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Supermercado","amount":4397,"type":"EXPENSE","category":"Alimentação","date":"2024-05-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["description"] != "Supermercado" {
			t.Errorf("expected Supermercado, got %v", tx["description"])
		}
		if tx["amount"] != float64(4397) {
			t.Errorf("expected amount 4397, got %v", tx["amount"])
		}
		if tx["id"] == "" {
			t.Error("expected a generated id")
		}
		if got := s.Transactions(); len(got) != 1 {
			t.Errorf("expected transaction stored, got %v", got)
		}
	})

	t.Run("returns 400 on missing description", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(newTestStore(t)))

		rec := doRequest(r, "POST", "/transactions",
			`{"amount":4397,"type":"EXPENSE","category":"Alimentação"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(newTestStore(t)))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"x","amount":100,"type":"TRANSFER","category":"Outros"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(newTestStore(t)))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"x","amount":100,"type":"EXPENSE","category":"Viagens"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(newTestStore(t)))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"x","amount":100,"type":"EXPENSE","category":"Outros","date":"10/05/2024"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(newTestStore(t)))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"x","amount":-100,"type":"EXPENSE","category":"Outros"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("returns 200 sorted by date descending", func(t *testing.T) {
		s := newTestStore(t)
		older, err := s.AddTransaction(store.TransactionInput{
			Description: "older", Amount: 100, Type: models.TransactionTypeExpense,
			Category: models.CategoryOutros, Date: testutil.Date(2024, 2, 1),
		})
		testutil.AssertNoError(t, err)
		newer, err := s.AddTransaction(store.TransactionInput{
			Description: "newer", Amount: 200, Type: models.TransactionTypeExpense,
			Category: models.CategoryOutros, Date: testutil.Date(2024, 3, 1),
		})
		testutil.AssertNoError(t, err)
		r := setupTransactionRouter(NewTransactionHandler(s))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(data))
		}
		first := data[0].(map[string]interface{})
		second := data[1].(map[string]interface{})
		if first["id"] != newer.ID || second["id"] != older.ID {
			t.Errorf("expected newest first, got %v then %v", first["id"], second["id"])
		}
	})

	t.Run("paginates", func(t *testing.T) {
		s := newTestStore(t)
		for i := 0; i < 5; i++ {
			_, err := s.AddTransaction(store.TransactionInput{
				Description: "x", Amount: 100, Type: models.TransactionTypeExpense,
				Category: models.CategoryOutros, Date: testutil.Date(2024, 1, i+1),
			})
			testutil.AssertNoError(t, err)
		}
		r := setupTransactionRouter(NewTransactionHandler(s))

		rec := doRequest(r, "GET", "/transactions?page=2&page_size=2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if len(result["data"].([]interface{})) != 2 {
			t.Errorf("expected 2 items on page 2, got %v", result["data"])
		}
		if result["total_items"] != float64(5) {
			t.Errorf("expected 5 total items, got %v", result["total_items"])
		}
		if result["total_pages"] != float64(3) {
			t.Errorf("expected 3 total pages, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on invalid page size", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(newTestStore(t)))

		rec := doRequest(r, "GET", "/transactions?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns empty page past the end", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(newTestStore(t)))

		rec := doRequest(r, "GET", "/transactions?page=99", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if len(result["data"].([]interface{})) != 0 {
			t.Errorf("expected empty page, got %v", result["data"])
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		s := newTestStore(t)
		tx, err := s.AddTransaction(store.TransactionInput{
			Description: "x", Amount: 100, Type: models.TransactionTypeExpense, Category: models.CategoryOutros,
		})
		testutil.AssertNoError(t, err)
		r := setupTransactionRouter(NewTransactionHandler(s))

		rec := doRequest(r, "DELETE", "/transactions/"+tx.ID, "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if got := s.Transactions(); len(got) != 0 {
			t.Errorf("expected transaction removed, got %v", got)
		}
	})

	t.Run("returns 204 for unknown id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(newTestStore(t)))

		rec := doRequest(r, "DELETE", "/transactions/no-such-id", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}
