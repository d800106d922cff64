// Package homegraph holds the read-only home-automation object graph that
// Gray Logic serves to clients.
//
// The graph is produced by the bridge process that talks to the vendor
// home-automation framework. It arrives as a snapshot document (YAML or
// JSON), is validated against an embedded JSON schema, and is linked into
// plain Go structs:
//
//	Home
//	 ├── Rooms, RoomForEntireHome
//	 ├── Zones ──────────▶ Rooms
//	 ├── Accessories ────▶ Room, Services, Profiles
//	 │     └── Services ─▶ Characteristics, LinkedServices
//	 ├── ServiceGroups ──▶ Services
//	 ├── ActionSets ─────▶ Actions ─▶ Characteristic
//	 └── Triggers ───────▶ ActionSets, Events ─▶ Characteristic
//
// Type, category, unit and format fields keep the framework's native string
// constants (types.go, vocabulary.go). Translation to the wire vocabulary
// happens in the translate package.
//
// A Store publishes snapshots atomically; a snapshot is never modified after
// it has been installed.
package homegraph
