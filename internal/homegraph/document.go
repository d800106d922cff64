package homegraph

import "time"

// The document types mirror the snapshot file layout. They are decoded from
// JSON after the raw input has been normalised and validated, then linked
// into the Home graph by the decoder.

type snapshotDoc struct {
	Homes []homeDoc `json:"homes"`
}

type homeDoc struct {
	UUID              string            `json:"uuid"`
	Name              string            `json:"name"`
	Primary           bool              `json:"primary"`
	HubState          string            `json:"hub_state"`
	RoomForEntireHome *roomDoc          `json:"room_for_entire_home"`
	Rooms             []roomDoc         `json:"rooms"`
	Zones             []zoneDoc         `json:"zones"`
	Accessories       []accessoryDoc    `json:"accessories"`
	ServiceGroups     []serviceGroupDoc `json:"service_groups"`
	ActionSets        []actionSetDoc    `json:"action_sets"`
	Triggers          []triggerDoc      `json:"triggers"`
}

type roomDoc struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type zoneDoc struct {
	UUID  string   `json:"uuid"`
	Name  string   `json:"name"`
	Rooms []string `json:"rooms"`
}

type accessoryDoc struct {
	UUID               string       `json:"uuid"`
	Name               string       `json:"name"`
	Room               string       `json:"room"`
	Category           string       `json:"category"`
	Reachable          bool         `json:"reachable"`
	Blocked            bool         `json:"blocked"`
	Bridged            bool         `json:"bridged"`
	SupportsIdentify   bool         `json:"supports_identify"`
	Manufacturer       string       `json:"manufacturer"`
	Model              string       `json:"model"`
	FirmwareVersion    string       `json:"firmware_version"`
	BridgedAccessories []string     `json:"bridged_accessories"`
	Services           []serviceDoc `json:"services"`
	Profiles           []profileDoc `json:"profiles"`
}

type profileDoc struct {
	UUID                    string   `json:"uuid"`
	NetworkAccessRestricted bool     `json:"network_access_restricted"`
	Services                []string `json:"services"`
}

type serviceDoc struct {
	UUID            string              `json:"uuid"`
	Name            string              `json:"name"`
	Type            string              `json:"type"`
	AssociatedType  string              `json:"associated_type"`
	Primary         bool                `json:"primary"`
	Interactive     bool                `json:"interactive"`
	LinkedServices  []string            `json:"linked_services"`
	Characteristics []characteristicDoc `json:"characteristics"`
}

type characteristicDoc struct {
	UUID        string       `json:"uuid"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Properties  []string     `json:"properties"`
	Metadata    *metadataDoc `json:"metadata"`
	Value       any          `json:"value"`
}

type metadataDoc struct {
	Format                  string `json:"format"`
	Units                   string `json:"units"`
	ManufacturerDescription string `json:"manufacturer_description"`
	MinimumValue            any    `json:"min"`
	MaximumValue            any    `json:"max"`
	StepValue               any    `json:"step"`
	MaxLength               any    `json:"max_length"`
	ValidValues             []any  `json:"valid_values"`
}

type serviceGroupDoc struct {
	UUID     string   `json:"uuid"`
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

type actionSetDoc struct {
	UUID      string      `json:"uuid"`
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Executing bool        `json:"executing"`
	Actions   []actionDoc `json:"actions"`
}

// Action kinds.
const (
	actionKindGeneric             = "generic"
	actionKindCharacteristicWrite = "characteristic_write"
)

type actionDoc struct {
	Kind           string `json:"kind"`
	UUID           string `json:"uuid"`
	Characteristic string `json:"characteristic"`
	TargetValue    any    `json:"target_value"`
}

// Trigger kinds.
const (
	triggerKindEvent = "event"
	triggerKindTimer = "timer"
)

type triggerDoc struct {
	Kind         string     `json:"kind"`
	UUID         string     `json:"uuid"`
	Name         string     `json:"name"`
	Enabled      bool       `json:"enabled"`
	LastFireDate *time.Time `json:"last_fire_date"`
	ActionSets   []string   `json:"action_sets"`

	// event
	ActivationState string     `json:"activation_state"`
	ExecutesOnce    bool       `json:"executes_once"`
	Events          []eventDoc `json:"events"`
	EndEvents       []eventDoc `json:"end_events"`

	// timer
	FireDate   *time.Time `json:"fire_date"`
	Recurrence float64    `json:"recurrence"`
}

// Event kinds.
const (
	eventKindLocation            = "location"
	eventKindCalendar            = "calendar"
	eventKindSignificantTime     = "significant_time"
	eventKindDuration            = "duration"
	eventKindCharacteristic      = "characteristic"
	eventKindCharacteristicRange = "characteristic_range"
	eventKindPresence            = "presence"
)

type eventDoc struct {
	Kind string `json:"kind"`
	UUID string `json:"uuid"`

	NotifyOnEntry bool       `json:"notify_on_entry"`
	NotifyOnExit  bool       `json:"notify_on_exit"`
	Region        *regionDoc `json:"region"`

	FireDate *time.Time `json:"fire_date"`

	SignificantEvent string  `json:"significant_event"`
	Offset           float64 `json:"offset"`

	Duration float64 `json:"duration"`

	Characteristic string `json:"characteristic"`
	TriggerValue   any    `json:"trigger_value"`
	Min            any    `json:"min"`
	Max            any    `json:"max"`

	PresenceType string `json:"presence_type"`
	UserType     string `json:"user_type"`
}

type regionDoc struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}
