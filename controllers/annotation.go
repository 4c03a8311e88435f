package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"venograph/annotate"
	"venograph/relay"
)

type saveAnnotationInput struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Location string  `json:"location" binding:"required"`
	Side     string  `json:"side"`
	Value    string  `json:"value"`
}

// SaveAnnotation Validate a submission and append a new annotation; on
// success the record is also forwarded to the relay backend when one is
// configured. A relay failure is reported locally and never retried.
func SaveAnnotation(cache *annotate.SessionCache, relayClient *relay.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}

		var input saveAnnotationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session.Lock()
		defer session.Unlock()

		annotation, err := session.SaveAnnotation(input.X, input.Y, input.Location, input.Side, input.Value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Info(fmt.Sprintf("Annotation %d added to session %s", annotation.ID, session.ID))

		relayStatus := "disabled"
		if relayClient.Enabled() {
			if err := relayClient.SendAnnotation(annotation); err != nil {
				log.Warn(fmt.Sprintf("Failed to save annotation %d to backend: %s", annotation.ID, err.Error()))
				relayStatus = "failed"
			} else {
				relayStatus = "saved"
			}
		}

		c.JSON(http.StatusOK, gin.H{"data": annotation, "relay": relayStatus})
	}
}

// DeleteAnnotation Delete exactly one annotation by id; its click point
// reverts to pending on the next reconciliation pass
func DeleteAnnotation(cache *annotate.SessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}

		id, err := strconv.Atoi(c.Param("annotation_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "annotation id must be an integer"})
			return
		}

		session.Lock()
		defer session.Unlock()

		if !session.DeleteAnnotation(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found!"})
			return
		}
		log.Info(fmt.Sprintf("Annotation %d deleted from session %s", id, session.ID))

		c.JSON(http.StatusOK, gin.H{"data": true})
	}
}
