package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names.
const (
	MeasurementCharacteristic = "characteristic"
	MeasurementSnapshot       = "graph_snapshot"
)

// CharacteristicSample is one characteristic value taken from a snapshot.
type CharacteristicSample struct {
	Home               string
	Room               string
	Accessory          string
	ServiceType        string
	CharacteristicType string
	CharacteristicUUID string

	// Value must be a bool, an integer, a float64 or a string.
	Value any
	Time  time.Time
}

// WriteCharacteristic queues one characteristic value. Identity goes into
// tags; the value is the single "value" field. Empty tags are left out.
func (c *Client) WriteCharacteristic(s CharacteristicSample) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(characteristicPoint(s))
}

// WriteSnapshotStats queues the entity counts of an installed snapshot.
func (c *Client) WriteSnapshotStats(source string, counts map[string]int, ts time.Time) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(snapshotPoint(source, counts, ts))
}

func characteristicPoint(s CharacteristicSample) *write.Point {
	tags := make(map[string]string, 6)
	for k, v := range map[string]string{
		"home":                s.Home,
		"room":                s.Room,
		"accessory":           s.Accessory,
		"service_type":        s.ServiceType,
		"characteristic_type": s.CharacteristicType,
		"characteristic_uuid": s.CharacteristicUUID,
	} {
		if v != "" {
			tags[k] = v
		}
	}
	return write.NewPoint(MeasurementCharacteristic, tags, map[string]any{"value": s.Value}, s.Time)
}

func snapshotPoint(source string, counts map[string]int, ts time.Time) *write.Point {
	fields := make(map[string]any, len(counts))
	for k, v := range counts {
		fields[k] = v
	}
	return write.NewPoint(MeasurementSnapshot, map[string]string{"source": source}, fields, ts)
}
