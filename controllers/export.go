package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"venograph/annotate"
	"venograph/export"
	"venograph/render"
	"venograph/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func styleFromConfig(config *utils.Config) render.Style {
	return render.Style{
		FontCandidates: config.Render.FontCandidates,
		FontSize:       config.Render.FontSize,
		MarkerRadius:   config.Render.MarkerRadius,
	}
}

// ExportMarkers Serve the displayed image with green/red reconciliation dots
func ExportMarkers(cache *annotate.SessionCache, config *utils.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		img := render.DrawMarkers(session.Display(), session.Points, session.Annotations, session.Tolerance, styleFromConfig(config))
		buffer, err := utils.ImageToPngBuffer(img)
		if err != nil {
			log.Warn(fmt.Sprintf("Error writing marker export to image buffer: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", *buffer)
	}
}

// ExportAnnotated Serve the displayed image with the annotation values drawn
func ExportAnnotated(cache *annotate.SessionCache, config *utils.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		img := render.DrawValues(session.Display(), session.Annotations, session.Vocab, styleFromConfig(config))
		buffer, err := utils.ImageToPngBuffer(img)
		if err != nil {
			log.Warn(fmt.Sprintf("Error writing annotated export to image buffer: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", *buffer)
	}
}

// ExportTable Serve the summary projection rendered as a table image
func ExportTable(cache *annotate.SessionCache, config *utils.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		img := render.RenderSummaryTable(session.Summary(), styleFromConfig(config))
		buffer, err := utils.ImageToPngBuffer(img)
		if err != nil {
			log.Warn(fmt.Sprintf("Error writing table export to image buffer: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", *buffer)
	}
}

// ExportExcel Serve the summary projection as a spreadsheet
func ExportExcel(cache *annotate.SessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := getSession(c, cache)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		buffer, err := export.WriteSummaryExcel(session.Summary())
		if err != nil {
			log.Warn(fmt.Sprintf("Error writing excel export: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="master_annotations.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
	}
}
