package mqtt

import "testing"

func TestTopics(t *testing.T) {
	topics := Topics{}
	tests := []struct{ got, want string }{
		{topics.Snapshot(), "graylogic/homegraph/snapshot"},
		{topics.Status(), "graylogic/homegraph/status"},
		{topics.Updated(), "graylogic/homegraph/updated"},
		{topics.BridgeSnapshot("H1"), "graylogic/homegraph/snapshot/H1"},
		{topics.AllBridgeSnapshots(), "graylogic/homegraph/snapshot/+"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestBridgeFromTopic(t *testing.T) {
	tests := map[string]string{
		"graylogic/homegraph/snapshot/H1":  "H1",
		"graylogic/homegraph/snapshot":     "",
		"graylogic/homegraph/snapshot/":    "",
		"graylogic/homegraph/snapshot/a/b": "",
		"graylogic/other/snapshot/H1":      "",
	}
	for topic, want := range tests {
		if got := BridgeFromTopic(topic); got != want {
			t.Errorf("BridgeFromTopic(%q) = %q, want %q", topic, got, want)
		}
	}
}

func TestTopicMatches(t *testing.T) {
	tests := []struct {
		filter, topic string
		want          bool
	}{
		{"a/b", "a/b", true},
		{"a/+", "a/b", true},
		{"a/+", "a/b/c", false},
		{"a/#", "a/b/c", true},
		{"a/#", "a", true},
		{"a/#/c", "a/b/c", false},
		{"a/b/c", "a/b", false},
		{"+/+", "a", false},
	}
	for _, tt := range tests {
		if got := TopicMatches(tt.filter, tt.topic); got != tt.want {
			t.Errorf("TopicMatches(%q, %q) = %v, want %v", tt.filter, tt.topic, got, tt.want)
		}
	}
}
