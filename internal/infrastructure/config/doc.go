// Package config handles loading and validating homegraph server configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with HOMEGRAPH_* environment variables
//   - Validation of every section, reporting all problems together
//   - Default value handling
//
// Security Considerations:
//   - Sensitive values (MQTT password, InfluxDB token, JWT secret) should be
//     set via environment variables
//   - An empty JWT secret disables bearer authentication on the RPC surface
//
// Usage:
//
//	cfg, err := config.Load("configs/homegraph.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Graph.SnapshotPath)
package config
