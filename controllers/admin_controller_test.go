package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backend/entity"
	"backend/models"
	"backend/pkg/resp"
	"backend/routes"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A named shared-memory database keeps every pooled connection on the
	// same store; a bare :memory: DSN would give each connection its own.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect test database")
	require.NoError(t, testDB.AutoMigrate(&entity.MenuItem{}, &entity.MenuItemOption{}))

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, testDB)
	return r, testDB
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func createPizza(t *testing.T, router *gin.Engine) uint {
	t.Helper()
	body := map[string]interface{}{
		"name":      "Pizza",
		"itemPrice": 5.95,
		"allowedOptions": []map[string]interface{}{
			{"name": "pepperoni", "deltaPrice": 0.30},
			{"name": "sausage", "deltaPrice": 0.30},
		},
	}
	recorder := doRequest(router, jsonRequest(http.MethodPost, "/admin/menuItem", body))
	require.Equal(t, http.StatusCreated, recorder.Code)

	id, err := strconv.ParseUint(recorder.Body.String(), 10, 32)
	require.NoError(t, err, "creation body must be the new id as a string")
	return uint(id)
}

func getMenuItem(t *testing.T, router *gin.Engine, id uint) models.MenuItemDto {
	t.Helper()
	recorder := doRequest(router, jsonRequest(http.MethodGet, fmt.Sprintf("/menuItem/%d", id), nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var dto models.MenuItemDto
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dto))
	return dto
}

func TestAddMenuItemPizzaScenario(t *testing.T) {
	router, _ := setupTestRouter(t)

	id := createPizza(t, router)
	assert.Greater(t, id, uint(0))

	dto := getMenuItem(t, router, id)
	assert.Equal(t, "Pizza", dto.Name)
	assert.Equal(t, 5.95, *dto.ItemPrice)
	require.Len(t, dto.AllowedOptions, 2)

	names := []string{dto.AllowedOptions[0].Name, dto.AllowedOptions[1].Name}
	assert.ElementsMatch(t, []string{"pepperoni", "sausage"}, names)
	for _, option := range dto.AllowedOptions {
		assert.Greater(t, *option.Id, uint(0), "options get server-assigned ids")
	}
}

func TestAddMenuItemEmptyNameReturns400(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{"name": "", "itemPrice": 1.00}
	recorder := doRequest(router, jsonRequest(http.MethodPost, "/admin/menuItem", body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var errBody resp.ErrorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errBody))
	assert.Equal(t, "Bad Request", errBody.Error)
	assert.Equal(t, "/admin/menuItem", errBody.Path)
}

func TestAddMenuItemPreassignedIdReturns400(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{"id": 12, "name": "Pizza", "itemPrice": 5.95}
	recorder := doRequest(router, jsonRequest(http.MethodPost, "/admin/menuItem", body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddMenuItemMalformedJsonReturns400(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/menuItem", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddMenuItemOptionMissingParentReturns404(t *testing.T) {
	router, db := setupTestRouter(t)

	body := map[string]interface{}{"name": "extra", "deltaPrice": 0.10}
	recorder := doRequest(router, jsonRequest(http.MethodPost, "/admin/menuItem/999999/option", body))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	var errBody resp.ErrorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errBody))
	assert.Equal(t, "Not Found", errBody.Error)
	assert.Equal(t, http.StatusNotFound, errBody.Status)
	assert.NotEmpty(t, errBody.Timestamp)
	assert.Equal(t, "/admin/menuItem/999999/option", errBody.Path)

	var count int64
	db.Model(&entity.MenuItemOption{}).Count(&count)
	assert.Zero(t, count, "failed attach must not persist an option")
}

func TestAddMenuItemOption(t *testing.T) {
	router, _ := setupTestRouter(t)
	itemID := createPizza(t, router)

	body := map[string]interface{}{"name": "mushrooms", "deltaPrice": 0.25}
	path := fmt.Sprintf("/admin/menuItem/%d/option", itemID)
	recorder := doRequest(router, jsonRequest(http.MethodPost, path, body))
	require.Equal(t, http.StatusCreated, recorder.Code)

	dto := getMenuItem(t, router, itemID)
	assert.Len(t, dto.AllowedOptions, 3)
}

func TestCreateStandaloneOption(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{"name": "extra cheese", "deltaPrice": 0.50}
	recorder := doRequest(router, jsonRequest(http.MethodPost, "/admin/option", body))
	require.Equal(t, http.StatusCreated, recorder.Code)

	_, err := strconv.ParseUint(recorder.Body.String(), 10, 32)
	assert.NoError(t, err)
}

func TestCreateStandaloneOptionRejectsPreassignedId(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{"id": 3, "name": "extra cheese", "deltaPrice": 0.50}
	recorder := doRequest(router, jsonRequest(http.MethodPost, "/admin/option", body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteOptionFlow(t *testing.T) {
	router, _ := setupTestRouter(t)
	itemID := createPizza(t, router)

	dto := getMenuItem(t, router, itemID)
	require.Len(t, dto.AllowedOptions, 2)
	victim := *dto.AllowedOptions[0].Id

	recorder := doRequest(router, jsonRequest(http.MethodDelete, fmt.Sprintf("/admin/option/%d", victim), nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	dto = getMenuItem(t, router, itemID)
	require.Len(t, dto.AllowedOptions, 1)
	assert.NotEqual(t, victim, *dto.AllowedOptions[0].Id)

	// Already gone.
	recorder = doRequest(router, jsonRequest(http.MethodDelete, fmt.Sprintf("/admin/option/%d", victim), nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddOptionToMenuItemFlow(t *testing.T) {
	router, _ := setupTestRouter(t)
	itemID := createPizza(t, router)

	body := map[string]interface{}{"name": "anchovies", "deltaPrice": 0.40}
	recorder := doRequest(router, jsonRequest(http.MethodPost, "/admin/option", body))
	require.Equal(t, http.StatusCreated, recorder.Code)
	optionID, err := strconv.ParseUint(recorder.Body.String(), 10, 32)
	require.NoError(t, err)

	path := fmt.Sprintf("/admin/menuItem/%d/option/%d", itemID, optionID)
	recorder = doRequest(router, jsonRequest(http.MethodPut, path, nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	dto := getMenuItem(t, router, itemID)
	ids := make([]uint, 0, len(dto.AllowedOptions))
	for _, option := range dto.AllowedOptions {
		ids = append(ids, *option.Id)
	}
	assert.Contains(t, ids, uint(optionID))
}

func TestAddOptionToMenuItemUnresolvedIds(t *testing.T) {
	router, _ := setupTestRouter(t)
	itemID := createPizza(t, router)

	recorder := doRequest(router, jsonRequest(http.MethodPut, fmt.Sprintf("/admin/menuItem/%d/option/999999", itemID), nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(router, jsonRequest(http.MethodPut, "/admin/menuItem/999999/option/1", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
