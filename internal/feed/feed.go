// Package feed installs graph snapshots received over MQTT.
//
// Bridges publish retained snapshot documents (JSON or YAML) on the
// configured topic. The topic may contain wildcards, in which case each
// matching topic is treated as one bridge and the homes of all bridges are
// merged in topic order. An empty retained message withdraws that bridge's
// homes.
package feed

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/mqtt"
)

// Subscriber is the part of the MQTT client the feed consumes.
type Subscriber interface {
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
	Unsubscribe(topic string) error
}

// Publisher receives update notices after each installed snapshot.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Logger defines the logging interface used by the feed.
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

// UpdateNotice is published on the updated topic after every install.
type UpdateNotice struct {
	Source   string           `json:"source"`
	LoadedAt time.Time        `json:"loaded_at"`
	Bridges  int              `json:"bridges"`
	Counts   homegraph.Counts `json:"counts"`
}

// Feed subscribes to snapshot documents and swaps them into a Store.
type Feed struct {
	sub     Subscriber
	decoder *homegraph.Decoder
	store   *homegraph.Store
	topic   string
	qos     byte

	pub    Publisher
	logger Logger

	// mu serialises handling so merged snapshots are built from a
	// consistent set of bridge documents.
	mu      sync.Mutex
	bridges map[string]*homegraph.Snapshot
}

// New creates a feed for topic. Call Start to subscribe.
func New(sub Subscriber, decoder *homegraph.Decoder, store *homegraph.Store, topic string, qos byte) *Feed {
	return &Feed{
		sub:     sub,
		decoder: decoder,
		store:   store,
		topic:   topic,
		qos:     qos,
		logger:  noopLogger{},
		bridges: make(map[string]*homegraph.Snapshot),
	}
}

// SetLogger sets the logger for the feed.
func (f *Feed) SetLogger(logger Logger) {
	f.logger = logger
}

// SetPublisher enables update notices on mqtt.Topics{}.Updated().
func (f *Feed) SetPublisher(pub Publisher) {
	f.pub = pub
}

// Start subscribes to the snapshot topic. Retained documents arrive
// immediately after.
func (f *Feed) Start() error {
	if f.topic == "" {
		return ErrNoTopic
	}
	if err := f.sub.Subscribe(f.topic, f.qos, f.handle); err != nil {
		return fmt.Errorf("subscribing to %s: %w", f.topic, err)
	}
	f.logger.Info("graph feed subscribed", "topic", f.topic)
	return nil
}

// Stop unsubscribes. The last installed snapshot stays in the store.
func (f *Feed) Stop() error {
	if err := f.sub.Unsubscribe(f.topic); err != nil {
		return fmt.Errorf("unsubscribing from %s: %w", f.topic, err)
	}
	return nil
}

func (f *Feed) handle(topic string, payload []byte) error {
	if !mqtt.TopicMatches(f.topic, topic) {
		f.logger.Debug("ignoring message outside feed topic", "topic", topic)
		return nil
	}

	notice, err := f.install(topic, payload)
	if err != nil || notice == nil {
		return err
	}
	f.notify(notice)
	return nil
}

// install records the bridge document for topic and swaps the merged
// snapshot into the store. It returns nil when nothing changed.
func (f *Feed) install(topic string, payload []byte) (*UpdateNotice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(payload) == 0 {
		if _, ok := f.bridges[topic]; !ok {
			return nil, nil
		}
		delete(f.bridges, topic)
		f.logger.Info("graph bridge withdrawn", "topic", topic)
	} else {
		snap, err := f.decoder.Decode(payload, "mqtt:"+topic)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRejected, topic, err)
		}
		f.bridges[topic] = snap
	}

	merged := f.merge()
	f.store.Replace(merged)
	return &UpdateNotice{
		Source:   merged.Source,
		LoadedAt: merged.LoadedAt,
		Bridges:  len(f.bridges),
		Counts:   merged.Counts(),
	}, nil
}

// merge combines bridge documents in topic order. A home UUID that a
// previous bridge already supplied is skipped.
func (f *Feed) merge() *homegraph.Snapshot {
	if len(f.bridges) == 1 {
		for _, snap := range f.bridges {
			return snap
		}
	}

	topics := make([]string, 0, len(f.bridges))
	for t := range f.bridges {
		topics = append(topics, t)
	}
	slices.Sort(topics)

	seen := make(map[string]string)
	var homes []*homegraph.Home
	for _, t := range topics {
		for _, h := range f.bridges[t].Homes() {
			if first, dup := seen[h.UUID]; dup {
				f.logger.Warn("duplicate home across bridges",
					"home", h.Name, "uuid", h.UUID, "kept", first, "dropped", t)
				continue
			}
			seen[h.UUID] = t
			homes = append(homes, h)
		}
	}
	return homegraph.NewSnapshot(homes, "mqtt:"+f.topic)
}

// notify publishes at QoS 0. It runs inside the MQTT message callback,
// where waiting for a PUBACK would stall delivery.
func (f *Feed) notify(notice *UpdateNotice) {
	if f.pub == nil {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		f.logger.Error("encoding update notice", "error", err)
		return
	}
	if err := f.pub.Publish(mqtt.Topics{}.Updated(), payload, 0, false); err != nil {
		f.logger.Warn("publishing update notice failed", "error", err)
	}
}
