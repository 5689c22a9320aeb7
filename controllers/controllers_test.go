package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Heartbait/controllers"
	game_service "Heartbait/services/game"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullEmitter struct{}

func (nullEmitter) Broadcast(event string, payload interface{})              {}
func (nullEmitter) EmitTo(playerID string, event string, payload interface{}) {}

func testRouter(gameService *game_service.Game) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", controllers.Ping)
	router.GET("/status", controllers.GameStatus(gameService))
	return router
}

func TestPing(t *testing.T) {
	router := testRouter(game_service.New(nullEmitter{}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Message string `json:"message"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "pong", response.Message)
}

func TestGameStatus(t *testing.T) {
	gameService := game_service.New(nullEmitter{})
	gameService.Join("p0", "Alice")
	gameService.Join("p1", "Bob")
	router := testRouter(gameService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/status", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Phase       string `json:"phase"`
		Round       int    `json:"round"`
		TotalRounds int    `json:"total_rounds"`
		Players     []struct {
			Name  string `json:"name"`
			Score int    `json:"score"`
		} `json:"players"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Equal(t, "Lobby", response.Phase)
	assert.Zero(t, response.Round)
	assert.Equal(t, 3, response.TotalRounds)
	require.Len(t, response.Players, 2)
	assert.Equal(t, "Alice", response.Players[0].Name)
}
