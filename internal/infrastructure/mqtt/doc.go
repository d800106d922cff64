// Package mqtt connects the home graph service to the Mosquitto broker.
//
// The bridge that owns the accessory database publishes retained snapshot
// documents on graylogic/homegraph/snapshot. This package provides the
// connection those documents arrive on:
//   - auto-reconnect with subscriptions restored after each reconnect
//   - a retained status document and a matching Last Will and Testament
//   - handler panic recovery with optional logging
//
// Usage:
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	err = client.Subscribe(mqtt.Topics{}.Snapshot(), 1,
//	    func(topic string, payload []byte) error {
//	        return feed.Apply(payload)
//	    })
package mqtt
