package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"venograph/models"
)

// APIKeyAuthMiddleware Reject requests whose api_key header does not exactly
// match the configured shared secret. There is no hashing, rotation or
// expiry; the check is a constant-time equality test.
func APIKeyAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("api_key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Invalid or missing API key"})
			return
		}
		c.Next()
	}
}

// RelayRoot Health route behind the credential check
func RelayRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, this is your secure annotation backend!"})
}

// RelaySaveAnnotation Accept one annotation object and echo it back. When a
// database is connected the record is stored first; either way the response
// is the same.
func RelaySaveAnnotation(c *gin.Context) {
	var annotation map[string]interface{}
	if err := c.ShouldBindJSON(&annotation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if models.DB != nil {
		record := models.RecordFromPayload(annotation)
		if err := models.DB.Create(&record).Error; err != nil {
			log.Warn("Cannot store annotation: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot store annotation"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved", "annotation": annotation})
}
