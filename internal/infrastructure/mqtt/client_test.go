package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/config"
)

func testConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Enabled: true,
		Broker: config.MQTTBrokerConfig{
			Host:     "127.0.0.1",
			Port:     1883,
			ClientID: "homegraph-test",
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     5,
		},
	}
}

// fakeToken completes immediately with err.
type fakeToken struct{ err error }

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Error() error                   { return t.err }
func (t fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakePaho records calls; the embedded interface panics on anything else.
type fakePaho struct {
	pahomqtt.Client

	mu           sync.Mutex
	connected    bool
	subscribeErr error
	subscribed   map[string]pahomqtt.MessageHandler
	unsubscribed []string
	published    []published
	disconnected bool
}

func newFakePaho() *fakePaho {
	return &fakePaho{connected: true, subscribed: map[string]pahomqtt.MessageHandler{}}
}

func (f *fakePaho) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakePaho) Publish(topic string, qos byte, retained bool, payload any) pahomqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, published{topic, qos, retained, payload.([]byte)})
	return fakeToken{}
}

func (f *fakePaho) Subscribe(topic string, _ byte, cb pahomqtt.MessageHandler) pahomqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribeErr != nil {
		return fakeToken{err: f.subscribeErr}
	}
	f.subscribed[topic] = cb
	return fakeToken{}
}

func (f *fakePaho) Unsubscribe(topics ...string) pahomqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribed = append(f.unsubscribed, topics...)
	for _, t := range topics {
		delete(f.subscribed, t)
	}
	return fakeToken{}
}

func (f *fakePaho) Disconnect(uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnected = true
	f.connected = false
}

// deliver invokes the paho-level handler registered for topic.
func (f *fakePaho) deliver(t *testing.T, topic string, payload []byte) {
	t.Helper()
	f.mu.Lock()
	cb := f.subscribed[topic]
	f.mu.Unlock()
	if cb == nil {
		t.Fatalf("no handler subscribed on %q", topic)
	}
	cb(f, fakeMessage{topic: topic, payload: payload})
}

type fakeMessage struct {
	pahomqtt.Message
	topic   string
	payload []byte
}

func (m fakeMessage) Topic() string   { return m.topic }
func (m fakeMessage) Payload() []byte { return m.payload }

type recordingLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
}

func (l *recordingLogger) Error(msg string, _ ...any) {
	l.mu.Lock()
	l.errors = append(l.errors, msg)
	l.mu.Unlock()
}

func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	l.warns = append(l.warns, msg)
	l.mu.Unlock()
}

func newTestClient() (*Client, *fakePaho) {
	fp := newFakePaho()
	c := newClient(testConfig())
	c.client = fp
	c.setConnected(true)
	return c, fp
}

func TestValidation(t *testing.T) {
	c, _ := newTestClient()
	noop := func(string, []byte) error { return nil }

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"publish empty topic", c.Publish("", nil, 1, false), ErrInvalidTopic},
		{"publish bad qos", c.Publish("t", nil, 3, false), ErrInvalidQoS},
		{"publish oversize", c.Publish("t", make([]byte, maxPayloadSize+1), 0, false), ErrPublishFailed},
		{"subscribe empty topic", c.Subscribe("", 1, noop), ErrInvalidTopic},
		{"subscribe bad qos", c.Subscribe("t", 5, noop), ErrInvalidQoS},
		{"subscribe nil handler", c.Subscribe("t", 1, nil), ErrSubscribeFailed},
		{"unsubscribe empty topic", c.Unsubscribe(""), ErrInvalidTopic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("error = %v, want %v", tt.err, tt.want)
			}
		})
	}
}

func TestNotConnected(t *testing.T) {
	c := newClient(testConfig())
	noop := func(string, []byte) error { return nil }

	if c.IsConnected() {
		t.Fatal("IsConnected() = true for a client with no connection")
	}
	if err := c.Publish("t", nil, 0, false); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Publish() error = %v, want ErrNotConnected", err)
	}
	if err := c.Subscribe("t", 0, noop); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Subscribe() error = %v, want ErrNotConnected", err)
	}
	if err := c.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() on unconnected client error = %v", err)
	}
}

func TestSubscribeDeliversAndTracks(t *testing.T) {
	c, fp := newTestClient()
	topic := Topics{}.Snapshot()

	got := make(chan []byte, 1)
	err := c.Subscribe(topic, 1, func(_ string, payload []byte) error {
		got <- payload
		return nil
	})
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if !c.HasSubscription(topic) || c.SubscriptionCount() != 1 {
		t.Fatal("subscription not tracked")
	}

	fp.deliver(t, topic, []byte(`{"homes":[]}`))
	if p := <-got; string(p) != `{"homes":[]}` {
		t.Errorf("payload = %s", p)
	}

	if err := c.Unsubscribe(topic); err != nil {
		t.Fatalf("Unsubscribe() error = %v", err)
	}
	if c.HasSubscription(topic) {
		t.Error("subscription still tracked after Unsubscribe")
	}
}

func TestSubscribeFailureIsNotTracked(t *testing.T) {
	c, fp := newTestClient()
	fp.subscribeErr = errors.New("not authorised")

	err := c.Subscribe("t", 1, func(string, []byte) error { return nil })
	if !errors.Is(err, ErrSubscribeFailed) {
		t.Fatalf("Subscribe() error = %v, want ErrSubscribeFailed", err)
	}
	if c.SubscriptionCount() != 0 {
		t.Error("failed subscription left in tracking map")
	}
}

func TestReconnectRestoresSubscriptions(t *testing.T) {
	c, fp := newTestClient()
	noop := func(string, []byte) error { return nil }
	for _, topic := range []string{Topics{}.Snapshot(), Topics{}.AllBridgeSnapshots()} {
		if err := c.Subscribe(topic, 1, noop); err != nil {
			t.Fatalf("Subscribe(%q) error = %v", topic, err)
		}
	}

	var lost error
	reconnected := false
	c.SetOnDisconnect(func(err error) { lost = err })
	c.SetOnConnect(func() { reconnected = true })

	c.handleDisconnect(errors.New("eof"))
	if c.IsConnected() || lost == nil {
		t.Fatal("disconnect not recorded")
	}

	// Broker forgot everything.
	fp.subscribed = map[string]pahomqtt.MessageHandler{}
	c.handleConnect()

	if !reconnected || !c.IsConnected() {
		t.Fatal("reconnect not recorded")
	}
	if len(fp.subscribed) != 2 {
		t.Errorf("restored %d subscriptions, want 2", len(fp.subscribed))
	}
	last := fp.published[len(fp.published)-1]
	if want := (Topics{}).Status(); last.topic != want || !last.retained {
		t.Errorf("online status published to %q retained=%v", last.topic, last.retained)
	}
}

func TestHandlerPanicAndErrorAreLogged(t *testing.T) {
	c, fp := newTestClient()
	logger := &recordingLogger{}
	c.SetLogger(logger)

	if err := c.Subscribe("a", 0, func(string, []byte) error { panic("boom") }); err != nil {
		t.Fatal(err)
	}
	if err := c.Subscribe("b", 0, func(string, []byte) error { return errors.New("bad doc") }); err != nil {
		t.Fatal(err)
	}

	fp.deliver(t, "a", nil)
	fp.deliver(t, "b", nil)

	if len(logger.errors) != 1 || len(logger.warns) != 1 {
		t.Errorf("errors=%v warns=%v, want one of each", logger.errors, logger.warns)
	}
}

func TestPublishAndClose(t *testing.T) {
	c, fp := newTestClient()

	if err := c.Publish(Topics{}.Updated(), []byte("x"), 1, false); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !fp.disconnected || c.IsConnected() {
		t.Error("Close() did not disconnect")
	}

	last := fp.published[len(fp.published)-1]
	var status statusPayload
	if err := json.Unmarshal(last.payload, &status); err != nil {
		t.Fatalf("status payload: %v", err)
	}
	if status.Status != "offline" || status.Reason != "graceful_shutdown" || status.ClientID != "homegraph-test" {
		t.Errorf("status = %+v", status)
	}
}

func TestHealthCheckCancelled(t *testing.T) {
	c, _ := newTestClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.HealthCheck(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("HealthCheck() error = %v, want context.Canceled", err)
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestBuildClientOptions(t *testing.T) {
	cfg := testConfig()
	cfg.Broker.TLS = true
	cfg.Auth.Username = "homegraph"
	cfg.Auth.Password = "secret"

	opts := buildClientOptions(cfg)
	configureLWT(opts, cfg.Broker.ClientID)

	if len(opts.Servers) != 1 || opts.Servers[0].String() != "ssl://127.0.0.1:1883" {
		t.Errorf("Servers = %v", opts.Servers)
	}
	if opts.Username != "homegraph" || opts.TLSConfig == nil {
		t.Error("auth or TLS not configured")
	}
	if opts.MaxReconnectInterval != 5*time.Second {
		t.Errorf("MaxReconnectInterval = %v", opts.MaxReconnectInterval)
	}
	if want := (Topics{}).Status(); !opts.WillEnabled || opts.WillTopic != want || !opts.WillRetained {
		t.Errorf("LWT = %v %q %v", opts.WillEnabled, opts.WillTopic, opts.WillRetained)
	}
}
