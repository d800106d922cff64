// Package history writes the characteristic values of every installed
// snapshot to a time-series store.
package history

import (
	"time"

	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-homegraph/internal/translate"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

// Writer is implemented by *influxdb.Client.
type Writer interface {
	WriteCharacteristic(s influxdb.CharacteristicSample)
	WriteSnapshotStats(source string, counts map[string]int, ts time.Time)
}

// Logger defines the logging interface used by the recorder.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Recorder turns snapshots into points.
type Recorder struct {
	w      Writer
	logger Logger
}

// New creates a recorder writing to w.
func New(w Writer) *Recorder {
	return &Recorder{w: w, logger: noopLogger{}}
}

// SetLogger sets the logger for the recorder.
func (r *Recorder) SetLogger(logger Logger) {
	r.logger = logger
}

// Attach records every snapshot store installs from now on, plus the one
// it currently holds.
func (r *Recorder) Attach(store *homegraph.Store) {
	store.Subscribe(r.Record)
	r.Record(store.Snapshot())
}

// Record writes snap's counts and every characteristic value that decodes
// to a bool, number or string. Data and undecodable values are skipped.
// Points carry the snapshot's load time.
func (r *Recorder) Record(snap *homegraph.Snapshot) {
	if snap == nil {
		return
	}
	ts := snap.LoadedAt
	counts := snap.Counts()
	r.w.WriteSnapshotStats(snap.Source, map[string]int{
		"homes":           counts.Homes,
		"accessories":     counts.Accessories,
		"services":        counts.Services,
		"characteristics": counts.Characteristics,
		"triggers":        counts.Triggers,
	}, ts)

	written, skipped := 0, 0
	for _, h := range snap.Homes() {
		for _, a := range h.Accessories {
			room := ""
			if a.Room != nil {
				room = a.Room.Name
			}
			for _, svc := range a.Services {
				for _, c := range svc.Characteristics {
					value, ok := sampleValue(c)
					if !ok {
						skipped++
						continue
					}
					r.w.WriteCharacteristic(influxdb.CharacteristicSample{
						Home:               h.Name,
						Room:               room,
						Accessory:          a.Name,
						ServiceType:        translate.ServiceType(svc.Type).String(),
						CharacteristicType: translate.CharacteristicType(c.Type).String(),
						CharacteristicUUID: c.UUID,
						Value:              value,
						Time:               ts,
					})
					written++
				}
			}
		}
	}
	r.logger.Debug("snapshot history recorded", "source", snap.Source, "written", written, "skipped", skipped)
}

func sampleValue(c *homegraph.Characteristic) (any, bool) {
	v := translate.DecodeValue(translate.ResolveFormat(c.Type, c.Metadata), c.Value)
	if v == nil || v.Kind() == wire.ValueKindData {
		return nil, false
	}
	raw := translate.RawValue(v)
	return raw, raw != nil
}
