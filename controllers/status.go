package controllers

import (
	game_service "Heartbait/services/game"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Current game status
// @Description Returns the authoritative phase clock tuple and the connected roster with scores
// @Tags game
// @Produce json
// @Success 200 {object} object{phase=string,time_left=integer,duration=integer,round=integer,total_rounds=integer,players=array}
// @Router /status [get]
func GameStatus(gameService *game_service.Game) gin.HandlerFunc {
	return func(c *gin.Context) {
		clock, players := gameService.Snapshot()
		clock["players"] = players
		c.JSON(http.StatusOK, clock)
	}
}
