package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	uuid "github.com/twinj/uuid"

	"venograph/annotate"
	"venograph/utils"
)

// getSession Resolve the :id route parameter to a live session
func getSession(c *gin.Context, cache *annotate.SessionCache) (*annotate.Session, bool) {
	session, err := cache.Read(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found!"})
		return nil, false
	}
	return session, true
}

// CreateSession Upload an image and open a fresh annotation session for it
func CreateSession(cache *annotate.SessionCache, config *utils.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "an image file is required"})
			return
		}
		if !utils.IsAllowedImageExt(fileHeader.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only png, jpg or jpeg images are allowed"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		img, format, err := utils.DecodeImage(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id := uuid.NewV4().String()
		session := annotate.NewSession(id, img, config.Vocabulary(), config.Annotate.Tolerance, config.Annotate.DisplayWidth)
		cache.Update(session)

		bounds := session.Display().Bounds()
		log.Info(fmt.Sprintf("Created session %s from %s upload %s", id, format, fileHeader.Filename))
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"id":     id,
			"width":  bounds.Dx(),
			"height": bounds.Dy(),
		}})
	}
}

// GetSession Return the full reconciled state of a session
func GetSession(cache *annotate.SessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		annotated, pending := session.Partitioned()

		points := make([]gin.H, 0, len(session.Points))
		for _, p := range session.Points {
			status := "pending"
			if annotate.IsAnnotated(p, session.Annotations, session.Tolerance) {
				status = "annotated"
			}
			points = append(points, gin.H{"x": p.X, "y": p.Y, "status": status})
		}

		// Pending points each get an open input form; the choices are shared.
		forms := make([]gin.H, 0, len(pending))
		for _, p := range pending {
			forms = append(forms, gin.H{"x": p.X, "y": p.Y})
		}

		bounds := session.Display().Bounds()
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"id":              session.ID,
			"width":           bounds.Dx(),
			"height":          bounds.Dy(),
			"rotation":        session.Rotation(),
			"points":          points,
			"annotated_count": len(annotated),
			"annotations":     session.Annotations,
			"pending_forms":   forms,
			"form_options": gin.H{
				"locations":       append([]string{annotate.SelectSentinel}, session.Vocab.Locations...),
				"sides":           append([]string{annotate.SelectSentinel}, annotate.Sides...),
				"side_required":   session.Vocab.SideRequired,
				"sentinel_values": session.Vocab.SentinelValues,
			},
		}})
	}
}

// RotateSession Rotate the displayed image by another 90 degrees
func RotateSession(cache *annotate.SessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		session.Rotate()
		bounds := session.Display().Bounds()
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"rotation": session.Rotation(),
			"width":    bounds.Dx(),
			"height":   bounds.Dy(),
		}})
	}
}

type addClickInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AddClick Record a clicked coordinate, deduplicated within the tolerance
func AddClick(cache *annotate.SessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}

		var input addClickInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session.Lock()
		defer session.Unlock()

		added := session.AddClick(annotate.ClickPoint{X: input.X, Y: input.Y})
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"added":  added,
			"points": len(session.Points),
		}})
	}
}
