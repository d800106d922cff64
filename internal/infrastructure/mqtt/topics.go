package mqtt

import (
	"fmt"
	"strings"
)

// TopicPrefix is the root of every topic the home graph service uses.
const TopicPrefix = "graylogic/homegraph"

// Topics builds home graph topic names.
//
//	topics := mqtt.Topics{}
//	topics.Snapshot() // graylogic/homegraph/snapshot
type Topics struct{}

// Snapshot is where the bridge publishes retained snapshot documents.
func (Topics) Snapshot() string {
	return TopicPrefix + "/snapshot"
}

// Status carries the service's online/offline state and the LWT.
func (Topics) Status() string {
	return TopicPrefix + "/status"
}

// Updated announces each snapshot the store accepts.
func (Topics) Updated() string {
	return TopicPrefix + "/updated"
}

// BridgeSnapshot is used when several bridges each publish their own
// homes.
//
// Example: graylogic/homegraph/snapshot/hap-bridge-01
func (Topics) BridgeSnapshot(bridgeID string) string {
	return fmt.Sprintf("%s/snapshot/%s", TopicPrefix, bridgeID)
}

// AllBridgeSnapshots matches every per-bridge snapshot topic.
func (Topics) AllBridgeSnapshots() string {
	return TopicPrefix + "/snapshot/+"
}

// BridgeFromTopic extracts the bridge ID from a per-bridge snapshot topic.
// It returns "" for any other topic.
func BridgeFromTopic(topic string) string {
	rest, ok := strings.CutPrefix(topic, TopicPrefix+"/snapshot/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}

// TopicMatches reports whether topic matches filter, honouring the + and #
// wildcards.
func TopicMatches(filter, topic string) bool {
	fp := strings.Split(filter, "/")
	tp := strings.Split(topic, "/")
	for i, f := range fp {
		if f == "#" {
			return i == len(fp)-1
		}
		if i >= len(tp) {
			return false
		}
		if f != "+" && f != tp[i] {
			return false
		}
	}
	return len(fp) == len(tp)
}
