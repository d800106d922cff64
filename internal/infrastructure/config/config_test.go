package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
graph:
  snapshot_path: "/var/lib/homegraph/home.yaml"
  mqtt_topic: "site/homegraph/snapshot"
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
mqtt:
  enabled: true
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
  qos: 1
api:
  host: "0.0.0.0"
  port: 8080
security:
  jwt:
    secret: "test-secret-key-at-least-32-chars!"
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Graph.SnapshotPath != "/var/lib/homegraph/home.yaml" {
		t.Errorf("Graph.SnapshotPath = %q", cfg.Graph.SnapshotPath)
	}
	if cfg.Graph.MQTTTopic != "site/homegraph/snapshot" {
		t.Errorf("Graph.MQTTTopic = %q", cfg.Graph.MQTTTopic)
	}
	if !cfg.Graph.Validate {
		t.Error("Graph.Validate should keep its default of true")
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test.db")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}
	if !cfg.AuthEnabled() {
		t.Error("AuthEnabled() = false with a secret configured")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: [yaml: content"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
api:
  port: 0
security:
  jwt:
    secret: "short"
`
	_, err := Load(writeConfig(t, content))
	if err == nil {
		t.Fatal("Load() expected validation error, got nil")
	}
	// Every problem is reported, not just the first.
	for _, want := range []string{"api.port", "security.jwt.secret"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	validJWTSecret := "test-secret-key-at-least-32-chars!"

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Database: DatabaseConfig{Path: "/data/homegraph.db", Audit: true},
				MQTT:     MQTTConfig{QoS: 1},
				API:      APIConfig{Port: 55123},
				Security: SecurityConfig{JWT: JWTConfig{Secret: validJWTSecret}},
			},
		},
		{
			name: "auth disabled",
			config: &Config{
				API: APIConfig{Port: 55123},
			},
		},
		{
			name: "audit without database path",
			config: &Config{
				Database: DatabaseConfig{Audit: true},
				API:      APIConfig{Port: 55123},
			},
			wantErr: true,
		},
		{
			name: "invalid QoS",
			config: &Config{
				MQTT: MQTTConfig{QoS: 3},
				API:  APIConfig{Port: 55123},
			},
			wantErr: true,
		},
		{
			name: "mqtt without topic",
			config: &Config{
				MQTT: MQTTConfig{Enabled: true},
				API:  APIConfig{Port: 55123},
			},
			wantErr: true,
		},
		{
			name:    "invalid port low",
			config:  &Config{API: APIConfig{Port: 0}},
			wantErr: true,
		},
		{
			name:    "invalid port high",
			config:  &Config{API: APIConfig{Port: 70000}},
			wantErr: true,
		},
		{
			name: "tls without certificate",
			config: &Config{
				API: APIConfig{Port: 55123, TLS: TLSConfig{Enabled: true}},
			},
			wantErr: true,
		},
		{
			name: "influxdb without url",
			config: &Config{
				API:      APIConfig{Port: 55123},
				InfluxDB: InfluxDBConfig{Enabled: true, Org: "home", Bucket: "homegraph"},
			},
			wantErr: true,
		},
		{
			name: "unknown log format",
			config: &Config{
				API:     APIConfig{Port: 55123},
				Logging: LoggingConfig{Format: "xml"},
			},
			wantErr: true,
		},
		{
			name: "JWT secret too short",
			config: &Config{
				API:      APIConfig{Port: 55123},
				Security: SecurityConfig{JWT: JWTConfig{Secret: "short"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_GetTimeouts(t *testing.T) {
	cfg := &Config{
		API: APIConfig{
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 45,
				Idle:  60,
			},
		},
	}

	if got := cfg.GetReadTimeout().Seconds(); got != 30 {
		t.Errorf("GetReadTimeout() = %v, want 30", got)
	}
	if got := cfg.GetWriteTimeout().Seconds(); got != 45 {
		t.Errorf("GetWriteTimeout() = %v, want 45", got)
	}
	if got := cfg.GetIdleTimeout().Seconds(); got != 60 {
		t.Errorf("GetIdleTimeout() = %v, want 60", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("HOMEGRAPH_GRAPH_SNAPSHOT_PATH", "/snap/home.json")
	t.Setenv("HOMEGRAPH_GRAPH_MQTT_TOPIC", "custom/topic")
	t.Setenv("HOMEGRAPH_DATABASE_PATH", "/custom/path.db")
	t.Setenv("HOMEGRAPH_MQTT_HOST", "mqtt.example.com")
	t.Setenv("HOMEGRAPH_MQTT_USERNAME", "testuser")
	t.Setenv("HOMEGRAPH_MQTT_PASSWORD", "testpass")
	t.Setenv("HOMEGRAPH_API_HOST", "192.168.1.1")
	t.Setenv("HOMEGRAPH_API_PORT", "9000")
	t.Setenv("HOMEGRAPH_INFLUXDB_TOKEN", "secret-token")
	t.Setenv("HOMEGRAPH_JWT_SECRET", "jwt-secret")

	if err := applyEnvOverrides(cfg); err != nil {
		t.Fatalf("applyEnvOverrides() error = %v", err)
	}

	checks := []struct {
		field, got, want string
	}{
		{"Graph.SnapshotPath", cfg.Graph.SnapshotPath, "/snap/home.json"},
		{"Graph.MQTTTopic", cfg.Graph.MQTTTopic, "custom/topic"},
		{"Database.Path", cfg.Database.Path, "/custom/path.db"},
		{"MQTT.Broker.Host", cfg.MQTT.Broker.Host, "mqtt.example.com"},
		{"MQTT.Auth.Username", cfg.MQTT.Auth.Username, "testuser"},
		{"MQTT.Auth.Password", cfg.MQTT.Auth.Password, "testpass"},
		{"API.Host", cfg.API.Host, "192.168.1.1"},
		{"InfluxDB.Token", cfg.InfluxDB.Token, "secret-token"},
		{"Security.JWT.Secret", cfg.Security.JWT.Secret, "jwt-secret"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if cfg.API.Port != 9000 {
		t.Errorf("API.Port = %d, want 9000", cfg.API.Port)
	}
}

func TestApplyEnvOverrides_BadPort(t *testing.T) {
	t.Setenv("HOMEGRAPH_API_PORT", "http")
	if err := applyEnvOverrides(defaultConfig()); err == nil {
		t.Error("applyEnvOverrides() expected error for non-numeric port")
	}
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if cfg.API.Port != 55123 {
		t.Errorf("API.Port = %d, want 55123", cfg.API.Port)
	}
	if cfg.Graph.MQTTTopic == "" {
		t.Error("default config should name an MQTT snapshot topic")
	}
	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}
	if cfg.AuthEnabled() {
		t.Error("AuthEnabled() should be false without a secret")
	}
}
