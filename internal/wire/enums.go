package wire

import "fmt"

// Format is the value format of a characteristic.
type Format int32

const (
	FormatInvalid Format = iota
	FormatBool
	FormatInt
	FormatFloat
	FormatString
	FormatArray
	FormatDictionary
	FormatUInt8
	FormatUInt16
	FormatUInt32
	FormatUInt64
	FormatData
	FormatTLV8
)

var formatNames = [...]string{
	FormatInvalid:    "InvalidFormat",
	FormatBool:       "Bool",
	FormatInt:        "Int",
	FormatFloat:      "Float",
	FormatString:     "String",
	FormatArray:      "Array",
	FormatDictionary: "Dictionary",
	FormatUInt8:      "UInt8",
	FormatUInt16:     "UInt16",
	FormatUInt32:     "UInt32",
	FormatUInt64:     "UInt64",
	FormatData:       "Data",
	FormatTLV8:       "TLV8",
}

func (f Format) String() string { return enumString(formatNames[:], int(f)) }

// MarshalText encodes the value by name.
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (f *Format) UnmarshalText(b []byte) error {
	v, err := parseEnum(formatNames[:], string(b))
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	*f = Format(v)
	return nil
}

// Units is the unit of a characteristic value.
type Units int32

const (
	UnitsInvalid Units = iota
	UnitsCelsius
	UnitsFahrenheit
	UnitsPercentage
	UnitsArcDegree
	UnitsSeconds
	UnitsLux
	UnitsPartsPerMillion
	UnitsMicrogramsPerCubicMeter
)

var unitsNames = [...]string{
	UnitsInvalid:                 "InvalidUnits",
	UnitsCelsius:                 "Celsius",
	UnitsFahrenheit:              "Fahrenheit",
	UnitsPercentage:              "Percentage",
	UnitsArcDegree:               "ArcDegree",
	UnitsSeconds:                 "Seconds",
	UnitsLux:                     "Lux",
	UnitsPartsPerMillion:         "PartsPerMillion",
	UnitsMicrogramsPerCubicMeter: "MicrogramsPerCubicMeter",
}

func (u Units) String() string { return enumString(unitsNames[:], int(u)) }

// MarshalText encodes the value by name.
func (u Units) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (u *Units) UnmarshalText(b []byte) error {
	v, err := parseEnum(unitsNames[:], string(b))
	if err != nil {
		return fmt.Errorf("units: %w", err)
	}
	*u = Units(v)
	return nil
}

// Property is a characteristic capability flag.
type Property int32

const (
	PropertyInvalid Property = iota
	PropertyReadable
	PropertyWritable
	PropertySupportsEventNotification
	PropertyHidden
	PropertyRequiresAuthorizationData
)

var propertyNames = [...]string{
	PropertyInvalid:                   "InvalidProperty",
	PropertyReadable:                  "Readable",
	PropertyWritable:                  "Writable",
	PropertySupportsEventNotification: "SupportsEventNotification",
	PropertyHidden:                    "Hidden",
	PropertyRequiresAuthorizationData: "RequiresAuthorizationData",
}

func (p Property) String() string { return enumString(propertyNames[:], int(p)) }

// MarshalText encodes the value by name.
func (p Property) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (p *Property) UnmarshalText(b []byte) error {
	v, err := parseEnum(propertyNames[:], string(b))
	if err != nil {
		return fmt.Errorf("property: %w", err)
	}
	*p = Property(v)
	return nil
}

// ActionSetType classifies an action set.
type ActionSetType int32

const (
	ActionSetTypeInvalid ActionSetType = iota
	ActionSetTypeWakeUp
	ActionSetTypeSleep
	ActionSetTypeHomeDeparture
	ActionSetTypeHomeArrival
	ActionSetTypeUserDefined
	ActionSetTypeTriggerOwned
)

var actionSetTypeNames = [...]string{
	ActionSetTypeInvalid:       "InvalidActionSetType",
	ActionSetTypeWakeUp:        "WakeUp",
	ActionSetTypeSleep:         "Sleep",
	ActionSetTypeHomeDeparture: "HomeDeparture",
	ActionSetTypeHomeArrival:   "HomeArrival",
	ActionSetTypeUserDefined:   "UserDefined",
	ActionSetTypeTriggerOwned:  "TriggerOwned",
}

func (a ActionSetType) String() string { return enumString(actionSetTypeNames[:], int(a)) }

// MarshalText encodes the value by name.
func (a ActionSetType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (a *ActionSetType) UnmarshalText(b []byte) error {
	v, err := parseEnum(actionSetTypeNames[:], string(b))
	if err != nil {
		return fmt.Errorf("action set type: %w", err)
	}
	*a = ActionSetType(v)
	return nil
}

// ActivationState is the activation state of an event trigger.
type ActivationState int32

const (
	ActivationStateInvalid ActivationState = iota
	ActivationStateEnabled
	ActivationStateDisabled
	ActivationStateDisabledNoHomeHub
	ActivationStateDisabledNoCompatibleHomeHub
	ActivationStateDisabledNoLocationServicesAuthorization
)

var activationStateNames = [...]string{
	ActivationStateInvalid:                                 "InvalidActivationState",
	ActivationStateEnabled:                                 "Enabled",
	ActivationStateDisabled:                                "Disabled",
	ActivationStateDisabledNoHomeHub:                       "DisabledNoHomeHub",
	ActivationStateDisabledNoCompatibleHomeHub:             "DisabledNoCompatibleHomeHub",
	ActivationStateDisabledNoLocationServicesAuthorization: "DisabledNoLocationServicesAuthorization",
}

func (a ActivationState) String() string { return enumString(activationStateNames[:], int(a)) }

// MarshalText encodes the value by name.
func (a ActivationState) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (a *ActivationState) UnmarshalText(b []byte) error {
	v, err := parseEnum(activationStateNames[:], string(b))
	if err != nil {
		return fmt.Errorf("activation state: %w", err)
	}
	*a = ActivationState(v)
	return nil
}

// SignificantEvent is a solar event.
type SignificantEvent int32

const (
	SignificantEventInvalid SignificantEvent = iota
	SignificantEventSunrise
	SignificantEventSunset
)

var significantEventNames = [...]string{
	SignificantEventInvalid: "InvalidSignificantEvent",
	SignificantEventSunrise: "Sunrise",
	SignificantEventSunset:  "Sunset",
}

func (s SignificantEvent) String() string { return enumString(significantEventNames[:], int(s)) }

// MarshalText encodes the value by name.
func (s SignificantEvent) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (s *SignificantEvent) UnmarshalText(b []byte) error {
	v, err := parseEnum(significantEventNames[:], string(b))
	if err != nil {
		return fmt.Errorf("significant event: %w", err)
	}
	*s = SignificantEvent(v)
	return nil
}

// PresenceEventType is the kind of presence change that fires an event.
type PresenceEventType int32

const (
	PresenceEventInvalid PresenceEventType = iota
	PresenceEventEveryEntry
	PresenceEventEveryExit
	PresenceEventFirstEntry
	PresenceEventLastExit
)

var presenceEventTypeNames = [...]string{
	PresenceEventInvalid:    "InvalidPresenceEventType",
	PresenceEventEveryEntry: "EveryEntry",
	PresenceEventEveryExit:  "EveryExit",
	PresenceEventFirstEntry: "FirstEntry",
	PresenceEventLastExit:   "LastExit",
}

func (p PresenceEventType) String() string { return enumString(presenceEventTypeNames[:], int(p)) }

// MarshalText encodes the value by name.
func (p PresenceEventType) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (p *PresenceEventType) UnmarshalText(b []byte) error {
	v, err := parseEnum(presenceEventTypeNames[:], string(b))
	if err != nil {
		return fmt.Errorf("presence event type: %w", err)
	}
	*p = PresenceEventType(v)
	return nil
}

// PresenceUserType is the set of users a presence event observes.
type PresenceUserType int32

const (
	PresenceUserInvalid PresenceUserType = iota
	PresenceUserCurrentUser
	PresenceUserHomeUsers
	PresenceUserCustomUsers
)

var presenceUserTypeNames = [...]string{
	PresenceUserInvalid:     "InvalidPresenceUserType",
	PresenceUserCurrentUser: "CurrentUser",
	PresenceUserHomeUsers:   "HomeUsers",
	PresenceUserCustomUsers: "CustomUsers",
}

func (p PresenceUserType) String() string { return enumString(presenceUserTypeNames[:], int(p)) }

// MarshalText encodes the value by name.
func (p PresenceUserType) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (p *PresenceUserType) UnmarshalText(b []byte) error {
	v, err := parseEnum(presenceUserTypeNames[:], string(b))
	if err != nil {
		return fmt.Errorf("presence user type: %w", err)
	}
	*p = PresenceUserType(v)
	return nil
}

// HubState is the reachability of a home's hub.
type HubState int32

const (
	HubStateInvalid HubState = iota
	HubStateNotAvailable
	HubStateConnected
	HubStateDisconnected
)

var hubStateNames = [...]string{
	HubStateInvalid:      "InvalidHubState",
	HubStateNotAvailable: "NotAvailable",
	HubStateConnected:    "Connected",
	HubStateDisconnected: "Disconnected",
}

func (h HubState) String() string { return enumString(hubStateNames[:], int(h)) }

// MarshalText encodes the value by name.
func (h HubState) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (h *HubState) UnmarshalText(b []byte) error {
	v, err := parseEnum(hubStateNames[:], string(b))
	if err != nil {
		return fmt.Errorf("hub state: %w", err)
	}
	*h = HubState(v)
	return nil
}

// EnabledFilter restricts triggers by enabled flag. The zero value does not filter.
type EnabledFilter int32

const (
	EnabledFilterNone EnabledFilter = iota
	EnabledFilterEnabledOnly
	EnabledFilterDisabledOnly
)

var enabledFilterNames = [...]string{
	EnabledFilterNone:         "NoFilter",
	EnabledFilterEnabledOnly:  "EnabledOnly",
	EnabledFilterDisabledOnly: "DisabledOnly",
}

func (e EnabledFilter) String() string { return enumString(enabledFilterNames[:], int(e)) }

// MarshalText encodes the value by name.
func (e EnabledFilter) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (e *EnabledFilter) UnmarshalText(b []byte) error {
	v, err := parseEnum(enabledFilterNames[:], string(b))
	if err != nil {
		return fmt.Errorf("enabled filter: %w", err)
	}
	*e = EnabledFilter(v)
	return nil
}

// RoomOperation selects what AddRemoveRoom does.
type RoomOperation int32

const (
	RoomOperationInvalid RoomOperation = iota
	RoomOperationAdd
	RoomOperationRemove
)

var roomOperationNames = [...]string{
	RoomOperationInvalid: "InvalidRoomOperation",
	RoomOperationAdd:     "Add",
	RoomOperationRemove:  "Remove",
}

func (r RoomOperation) String() string { return enumString(roomOperationNames[:], int(r)) }

// MarshalText encodes the value by name.
func (r RoomOperation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText accepts a name or a decimal value.
func (r *RoomOperation) UnmarshalText(b []byte) error {
	v, err := parseEnum(roomOperationNames[:], string(b))
	if err != nil {
		return fmt.Errorf("room operation: %w", err)
	}
	*r = RoomOperation(v)
	return nil
}
