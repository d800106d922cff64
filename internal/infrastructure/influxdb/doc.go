// Package influxdb stores home graph history in InfluxDB 2.x.
//
// Each installed snapshot produces one graph_snapshot point with entity
// counts and one characteristic point per decodable characteristic value.
// Writes are batched and non-blocking (batch_size, flush_interval); write
// failures arrive asynchronously through SetOnError.
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteCharacteristic(influxdb.CharacteristicSample{
//	    Home: "Main", CharacteristicType: "Brightness", Value: int64(75), Time: ts,
//	})
package influxdb
