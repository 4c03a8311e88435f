package render

import (
	"image"

	"github.com/fogleman/gg"

	"venograph/annotate"
)

const (
	tableWidth   = 600.0
	tableRowH    = 36.0
	tablePadding = 16.0
)

// RenderSummaryTable renders the projected summary rows as a two-column
// table image: a bold centered header, locations left-aligned, pressure
// values right-aligned.
func RenderSummaryTable(rows []annotate.SummaryRow, style Style) image.Image {
	height := tableRowH*float64(len(rows)+1) + 2*tablePadding
	dc := gg.NewContext(int(tableWidth), int(height))

	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(PickFontFace(style.FontCandidates, 18))

	valueColX := tableWidth * 0.7

	// Header row.
	headerY := tablePadding + tableRowH/2
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("Location", valueColX/2, headerY, 0.5, 0.5)
	dc.DrawStringAnchored("Pressure (mmHg)", valueColX+(tableWidth-valueColX)/2, headerY, 0.5, 0.5)

	dc.SetLineWidth(1.5)
	dc.DrawLine(tablePadding, tablePadding+tableRowH, tableWidth-tablePadding, tablePadding+tableRowH)
	dc.Stroke()

	for i, row := range rows {
		y := tablePadding + tableRowH*float64(i+1) + tableRowH/2
		dc.DrawStringAnchored(row.Location, tablePadding, y, 0, 0.5)
		dc.DrawStringAnchored(row.Value, tableWidth-tablePadding, y, 1, 0.5)

		dc.SetRGB(0.8, 0.8, 0.8)
		dc.SetLineWidth(0.5)
		lineY := tablePadding + tableRowH*float64(i+2)
		dc.DrawLine(tablePadding, lineY, tableWidth-tablePadding, lineY)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
	}

	return dc.Image()
}
