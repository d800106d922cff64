package wire

// HomeReference identifies the home a response was computed for.
type HomeReference struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// RoomReference points at a room.
type RoomReference struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// ServiceReference points at a service.
type ServiceReference struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// ActionSetReference points at an action set.
type ActionSetReference struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// CharacteristicReference points at a characteristic. Name carries the
// localized description.
type CharacteristicReference struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// HomeInformation describes one home.
type HomeInformation struct {
	Name      string   `json:"name"`
	UUID      string   `json:"uuid"`
	IsPrimary bool     `json:"is_primary"`
	HubState  HubState `json:"hub_state"`
}

// RoomInformation describes one room.
type RoomInformation struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// ZoneInformation describes one zone and its rooms.
type ZoneInformation struct {
	Name  string          `json:"name"`
	UUID  string          `json:"uuid"`
	Rooms []RoomReference `json:"rooms"`
}

// AccessoryInformation describes one accessory in full.
type AccessoryInformation struct {
	Name                  string               `json:"name"`
	UUID                  string               `json:"uuid"`
	Room                  *RoomReference       `json:"room,omitempty"`
	Category              Category             `json:"category"`
	Model                 string               `json:"model,omitempty"`
	Manufacturer          string               `json:"manufacturer,omitempty"`
	FirmwareVersion       string               `json:"firmware_version,omitempty"`
	IsReachable           bool                 `json:"is_reachable"`
	IsBlocked             bool                 `json:"is_blocked"`
	IsBridged             bool                 `json:"is_bridged"`
	SupportsIdentify      bool                 `json:"supports_identify"`
	Profiles              []ProfileInformation `json:"profiles,omitempty"`
	Services              []ServiceInformation `json:"services"`
	BridgedAccessoryUUIDs []string             `json:"bridged_accessory_uuids,omitempty"`
}

// ProfileInformation describes an accessory profile.
type ProfileInformation struct {
	UUID                    string             `json:"uuid"`
	NetworkAccessRestricted bool               `json:"network_access_restricted"`
	Services                []ServiceReference `json:"services"`
}

// ServiceInformation describes one service and its characteristics.
type ServiceInformation struct {
	Name                  string                      `json:"name"`
	UUID                  string                      `json:"uuid"`
	IsPrimary             bool                        `json:"is_primary"`
	IsInteractive         bool                        `json:"is_interactive"`
	ServiceType           ServiceType                 `json:"service_type"`
	AssociatedServiceType string                      `json:"associated_service_type,omitempty"`
	Characteristics       []CharacteristicInformation `json:"characteristics"`
	LinkedServices        []ServiceReference          `json:"linked_services,omitempty"`
}

// CharacteristicInformation describes one characteristic. Value is absent
// when the raw value could not be decoded.
type CharacteristicInformation struct {
	UUID                 string             `json:"uuid"`
	LocalizedDescription string             `json:"localized_description"`
	Properties           []Property         `json:"properties"`
	CharacteristicType   CharacteristicType `json:"characteristic_type"`
	Metadata             *Metadata          `json:"metadata,omitempty"`
	Value                *Value             `json:"value,omitempty"`
}

// Metadata describes the value space of a characteristic.
type Metadata struct {
	ManufacturerDescription string   `json:"manufacturer_description,omitempty"`
	Format                  Format   `json:"format"`
	Units                   Units    `json:"units"`
	MinimumValue            *Number  `json:"minimum_value,omitempty"`
	MaximumValue            *Number  `json:"maximum_value,omitempty"`
	StepValue               *Number  `json:"step_value,omitempty"`
	MaxLength               *Number  `json:"max_length,omitempty"`
	ValidValues             []Number `json:"valid_values,omitempty"`
}

// ServiceGroupInformation describes one service group.
type ServiceGroupInformation struct {
	Name     string             `json:"name"`
	UUID     string             `json:"uuid"`
	Services []ServiceReference `json:"services"`
}

// ActionSetInformation describes one action set and its actions.
type ActionSetInformation struct {
	Name          string              `json:"name"`
	UUID          string              `json:"uuid"`
	ActionSetType ActionSetType       `json:"action_set_type"`
	IsExecuting   bool                `json:"is_executing"`
	Actions       []ActionInformation `json:"actions"`
}

// ActionInformation holds exactly one action variant.
type ActionInformation struct {
	GenericAction        *GenericActionInformation        `json:"generic_action,omitempty"`
	CharacteristicAction *CharacteristicActionInformation `json:"characteristic_action,omitempty"`
}

// GenericActionInformation is an action of unmodelled kind.
type GenericActionInformation struct {
	UUID string `json:"uuid"`
}

// CharacteristicActionInformation writes TargetValue to Characteristic.
type CharacteristicActionInformation struct {
	UUID           string                     `json:"uuid"`
	Characteristic *CharacteristicInformation `json:"characteristic"`
	TargetValue    *Value                     `json:"target_value,omitempty"`
}

// TriggerInformation holds exactly one trigger variant.
type TriggerInformation struct {
	EventTrigger *EventTriggerInformation `json:"event_trigger,omitempty"`
	TimerTrigger *TimerTriggerInformation `json:"timer_trigger,omitempty"`
}

// TriggerCommon carries the fields shared by every trigger. LastFireDate is
// unix seconds, 0 when the trigger has never fired.
type TriggerCommon struct {
	Name         string               `json:"name"`
	UUID         string               `json:"uuid"`
	IsEnabled    bool                 `json:"is_enabled"`
	LastFireDate uint64               `json:"last_fire_date,omitempty"`
	ActionSets   []ActionSetReference `json:"action_sets"`
}

// EventTriggerInformation describes an event trigger.
type EventTriggerInformation struct {
	Trigger         TriggerCommon      `json:"trigger"`
	ActivationState ActivationState    `json:"activation_state"`
	ExecutesOnce    bool               `json:"executes_once"`
	Events          []EventInformation `json:"events"`
	EndEvents       []EventInformation `json:"end_events,omitempty"`
}

// TimerTriggerInformation describes a timer trigger. FireDate is unix
// seconds; Recurrence is seconds, 0 for a one-shot timer.
type TimerTriggerInformation struct {
	Trigger    TriggerCommon `json:"trigger"`
	FireDate   uint64        `json:"fire_date"`
	Recurrence uint64        `json:"recurrence,omitempty"`
}

// EventInformation holds exactly one event variant.
type EventInformation struct {
	LocationEvent                     *LocationEventInformation            `json:"location_event,omitempty"`
	CalendarEvent                     *CalendarEventInformation            `json:"calendar_event,omitempty"`
	SignificantTimeEvent              *SignificantTimeEventInformation     `json:"significant_time_event,omitempty"`
	DurationEvent                     *DurationEventInformation            `json:"duration_event,omitempty"`
	CharacteristicEvent               *CharacteristicEventInformation      `json:"characteristic_event,omitempty"`
	CharacteristicThresholdRangeEvent *CharacteristicRangeEventInformation `json:"characteristic_threshold_range_event,omitempty"`
	PresenceEvent                     *PresenceEventInformation            `json:"presence_event,omitempty"`
}

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CircularRegion is a geofence.
type CircularRegion struct {
	Center Coordinate `json:"center"`
	Radius float64    `json:"radius"`
}

// LocationEventInformation describes a geofence event.
type LocationEventInformation struct {
	UUID          string          `json:"uuid"`
	NotifyOnEntry bool            `json:"notify_on_entry"`
	NotifyOnExit  bool            `json:"notify_on_exit"`
	Region        *CircularRegion `json:"region,omitempty"`
}

// CalendarEventInformation fires at FireDate (unix seconds).
type CalendarEventInformation struct {
	UUID     string `json:"uuid"`
	FireDate uint64 `json:"fire_date"`
}

// SignificantTimeEventInformation fires Offset seconds from a solar event.
type SignificantTimeEventInformation struct {
	UUID             string           `json:"uuid"`
	SignificantEvent SignificantEvent `json:"significant_event"`
	Offset           int64            `json:"offset"`
}

// DurationEventInformation fires after Duration seconds.
type DurationEventInformation struct {
	UUID     string `json:"uuid"`
	Duration uint64 `json:"duration"`
}

// CharacteristicEventInformation fires when a characteristic changes.
// TriggerValue is absent when any change fires.
type CharacteristicEventInformation struct {
	UUID           string                   `json:"uuid"`
	Characteristic *CharacteristicReference `json:"characteristic"`
	TriggerValue   *Value                   `json:"trigger_value,omitempty"`
}

// NumberRange is an inclusive range with optional bounds.
type NumberRange struct {
	MinValue *Number `json:"min_value,omitempty"`
	MaxValue *Number `json:"max_value,omitempty"`
}

// CharacteristicRangeEventInformation fires when a characteristic enters Range.
type CharacteristicRangeEventInformation struct {
	UUID           string                   `json:"uuid"`
	Characteristic *CharacteristicReference `json:"characteristic"`
	Range          NumberRange              `json:"range"`
}

// PresenceEventInformation fires on users arriving or leaving.
type PresenceEventInformation struct {
	UUID          string            `json:"uuid"`
	PresenceEvent PresenceEventType `json:"presence_event"`
	PresenceUser  PresenceUserType  `json:"presence_user"`
}
