package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// AnnotationRecord is the relay-side stored copy of one submitted annotation.
// The submitted body is an arbitrary JSON object; the known fields are lifted
// into columns and the full payload is kept verbatim.
type AnnotationRecord struct {
	gorm.Model
	AnnotationID int     `json:"annotation_id"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Location     string  `json:"location"`
	Side         string  `json:"side"`
	Value        string  `json:"value"`
	Payload      string  `json:"payload"`
}

// RecordFromPayload lifts the recognised fields out of a submitted annotation
// object. Unknown or oddly typed fields stay in the raw payload only.
func RecordFromPayload(payload map[string]interface{}) AnnotationRecord {
	record := AnnotationRecord{}

	if id, ok := payload["id"].(float64); ok {
		record.AnnotationID = int(id)
	}
	if x, ok := payload["x"].(float64); ok {
		record.X = x
	}
	if y, ok := payload["y"].(float64); ok {
		record.Y = y
	}
	if location, ok := payload["location"].(string); ok {
		record.Location = location
	}
	if side, ok := payload["side"].(string); ok {
		record.Side = side
	}
	if value, ok := payload["value"].(string); ok {
		record.Value = value
	}

	if raw, err := json.Marshal(payload); err == nil {
		record.Payload = string(raw)
	}
	return record
}
