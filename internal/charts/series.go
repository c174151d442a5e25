// Package charts reshapes stored records into the {x, y} point series
// the mobile charting views consume.
package charts

import (
	"encoding/json"
	"time"
)

// Point is one chart point. X carries the original value of the x
// field (usually a date string), extra fields ride along untouched.
type Point map[string]any

// Series maps records to chart points: the xKey field becomes "x", the
// yKey field becomes "y", and every key listed in passthrough is copied
// as-is. A missing or non-numeric y coalesces to 0 so that sparse data
// still renders as a continuous line.
func Series(records []map[string]any, xKey, yKey string, passthrough ...string) []Point {
	points := make([]Point, 0, len(records))
	for _, record := range records {
		point := Point{
			"x": record[xKey],
			"y": toFloat(record[yKey]),
		}
		for _, key := range passthrough {
			if v, ok := record[key]; ok {
				point[key] = v
			}
		}
		points = append(points, point)
	}
	return points
}

// HourlySeries is Series for intra-day data: it additionally extracts
// the hour of day from the x value into an "hour" field. The x value
// must be a time.Time or an RFC 3339 string, anything else gets hour 0.
func HourlySeries(records []map[string]any, xKey, yKey string, passthrough ...string) []Point {
	points := Series(records, xKey, yKey, passthrough...)
	for i, point := range points {
		points[i]["hour"] = hourOf(point["x"])
	}
	return points
}

func hourOf(x any) int {
	switch v := x.(type) {
	case time.Time:
		return v.Hour()
	case string:
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts.Hour()
		}
	}
	return 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
