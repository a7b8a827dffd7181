package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderSessionID 訂票流程的 session 識別，由呼叫端明確帶入
const HeaderSessionID = "X-Session-ID"

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// SessionID 取出 session 識別；缺少時回 400 並回報 false
func SessionID(c *gin.Context) (string, bool) {
	sessionID := c.GetHeader(HeaderSessionID)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing " + HeaderSessionID + " header",
		})
		return "", false
	}
	return sessionID, true
}

// MuseumIDParam 解析路徑中的 museum_id；非合法 UUID 時回 400 並回報 false
func MuseumIDParam(c *gin.Context) (uuid.UUID, bool) {
	museumID, err := uuid.Parse(c.Param("museum_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid museum id",
		})
		return uuid.Nil, false
	}
	return museumID, true
}
