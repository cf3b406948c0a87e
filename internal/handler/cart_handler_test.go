package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartItemDTO struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type cartDTO struct {
	Items []cartItemDTO `json:"items"`
	Total float64       `json:"total"`
}

type addCartResponseDTO struct {
	Message string      `json:"message"`
	Item    cartItemDTO `json:"item"`
}

type messageDTO struct {
	Message string `json:"message"`
}

func newCartServer() *echo.Echo {
	e := echo.New()
	uc := usecase.NewCartUsecase(infraRepo.NewCartItemMemoryRepository())
	handler.NewCartHandler(uc).RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartHandler_Health(t *testing.T) {
	e := newCartServer()

	rec := doJSON(t, e, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cart Service is running", rec.Body.String())
}

// 空カート→追加→同一商品マージ→削除→空カート
func TestCartHandler_AddMergeDeleteScenario(t *testing.T) {
	e := newCartServer()

	//初回は空
	rec := doJSON(t, e, http.MethodGet, "/carts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cart cartDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 0)
	assert.Equal(t, 0.0, cart.Total)

	//qty=2で追加
	rec = doJSON(t, e, http.MethodPost, "/carts", `{"product_id":101,"name":"Product A","price":50.00,"quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var added addCartResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, int64(1), added.Item.ID)
	assert.Equal(t, int64(101), added.Item.ProductID)
	assert.Equal(t, int64(2), added.Item.Quantity)
	assert.NotEmpty(t, added.Message)

	rec = doJSON(t, e, http.MethodGet, "/carts", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Equal(t, 100.00, cart.Total)

	//同一商品を追加→行は増えず数量3、マージでも201
	rec = doJSON(t, e, http.MethodPost, "/carts", `{"product_id":101,"name":"Product A","price":50.00,"quantity":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, int64(1), added.Item.ID)
	assert.Equal(t, int64(3), added.Item.Quantity)

	rec = doJSON(t, e, http.MethodGet, "/carts", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 150.00, cart.Total)

	//削除→空
	rec = doJSON(t, e, http.MethodDelete, "/carts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var msg messageDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.NotEmpty(t, msg.Message)

	rec = doJSON(t, e, http.MethodGet, "/carts", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 0)
	assert.Equal(t, 0.0, cart.Total)
}

func TestCartHandler_GetItem(t *testing.T) {
	e := newCartServer()

	doJSON(t, e, http.MethodPost, "/carts", `{"product_id":101,"name":"Product A","price":50.00}`)

	rec := doJSON(t, e, http.MethodGet, "/carts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var item cartItemDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, int64(101), item.ProductID)
	assert.Equal(t, int64(1), item.Quantity) // quantity未指定は1

	//無いidは404
	rec = doJSON(t, e, http.MethodGet, "/carts/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var msg messageDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "item not found", msg.Message)
}

func TestCartHandler_AddMissingPriceIsRejected(t *testing.T) {
	e := newCartServer()

	rec := doJSON(t, e, http.MethodPost, "/carts", `{"product_id":101,"name":"Product A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var msg messageDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.NotEmpty(t, msg.Message)

	//カートは変化していない
	rec = doJSON(t, e, http.MethodGet, "/carts", "")
	var cart cartDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 0)
}

func TestCartHandler_DeleteNotFound(t *testing.T) {
	e := newCartServer()

	rec := doJSON(t, e, http.MethodDelete, "/carts/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	//整数でないidも404
	rec = doJSON(t, e, http.MethodDelete, "/carts/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
