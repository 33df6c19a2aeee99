package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agri_backend/internal/shared/geo"
)

// ResolveGeo は /api/geo/resolve エンドポイントを処理します。
// state クエリパラメータから州の代表座標を返します。
func ResolveGeo(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state is required"})
		return
	}

	lat, lon, err := geo.ResolveCoordinates(state)
	if err != nil {
		if errors.Is(err, geo.ErrUnknownState) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown state"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "geo resolution failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state, "lat": lat, "lon": lon})
}
