package homegraph

import "time"

// Entity is anything in the graph that carries a stable identifier.
// Filtering matches a pattern against the identifier of every entity.
type Entity interface {
	EntityUUID() string
}

// NamedEntity is an Entity that also has a display name. Filtering tries the
// name before the identifier for these.
type NamedEntity interface {
	Entity
	EntityName() string
}

// Home is the root of a home-automation object graph.
type Home struct {
	UUID      string
	Name      string
	IsPrimary bool
	HubState  string

	// RoomForEntireHome is the implicit room that holds accessories not
	// assigned anywhere else. It is never part of Rooms.
	RoomForEntireHome *Room

	Rooms         []*Room
	Zones         []*Zone
	Accessories   []*Accessory
	ServiceGroups []*ServiceGroup
	ActionSets    []*ActionSet
	Triggers      []Trigger
}

// Room is a named space within a home.
type Room struct {
	UUID string
	Name string
}

// Zone groups rooms. A room may belong to several zones.
type Zone struct {
	UUID  string
	Name  string
	Rooms []*Room
}

// Accessory is a physical device. Room is nil when the accessory has not
// been assigned.
type Accessory struct {
	UUID             string
	Name             string
	Room             *Room
	Category         string
	IsReachable      bool
	IsBlocked        bool
	IsBridged        bool
	SupportsIdentify bool
	Manufacturer     string
	Model            string
	FirmwareVersion  string

	// BridgedAccessoryUUIDs lists accessories reached through this one when
	// it is a bridge.
	BridgedAccessoryUUIDs []string

	Services []*Service
	Profiles []*Profile
}

// Profile is an optional capability bundle attached to an accessory.
type Profile struct {
	UUID                    string
	NetworkAccessRestricted bool
	Services                []*Service
}

// Service is a functional unit of an accessory.
type Service struct {
	UUID           string
	Name           string
	Type           string
	AssociatedType string
	IsPrimary      bool
	IsInteractive  bool

	Characteristics []*Characteristic
	LinkedServices  []*Service
}

// ServiceGroup is a named collection of services, possibly across accessories.
type ServiceGroup struct {
	UUID     string
	Name     string
	Services []*Service
}

// Characteristic is a typed, possibly readable or writable value of a service.
type Characteristic struct {
	UUID        string
	Type        string
	Description string
	Properties  []string
	Metadata    *Metadata

	// Value holds the last known raw value as decoded from the source.
	// Its dynamic type is whatever the source produced (bool, number,
	// string, []byte, slice, map).
	Value any
}

// Metadata describes a characteristic's value. Every field is optional.
type Metadata struct {
	Format                  string
	Units                   string
	ManufacturerDescription string
	MinimumValue            any
	MaximumValue            any
	StepValue               any
	MaxLength               any
	ValidValues             []any
}

// ActionSet is a named scene: a set of actions executed together.
type ActionSet struct {
	UUID        string
	Name        string
	Type        string
	IsExecuting bool
	Actions     []Action
}

// Action is one of GenericAction or CharacteristicWriteAction.
type Action interface {
	Entity
	isAction()
}

// GenericAction is an action whose concrete kind is not modelled.
type GenericAction struct {
	UUID string
}

// CharacteristicWriteAction writes TargetValue to Characteristic.
type CharacteristicWriteAction struct {
	UUID           string
	Characteristic *Characteristic
	TargetValue    any
}

// Trigger is one of EventTrigger or TimerTrigger.
type Trigger interface {
	NamedEntity
	Common() *TriggerBase
	isTrigger()
}

// TriggerBase carries the fields every trigger has.
type TriggerBase struct {
	UUID      string
	Name      string
	IsEnabled bool

	// LastFireDate is nil when the trigger has never fired.
	LastFireDate *time.Time

	ActionSets []*ActionSet
}

// EventTrigger fires when one of Events occurs. EndEvents describe when
// the triggered state ends.
type EventTrigger struct {
	TriggerBase
	ActivationState string
	ExecutesOnce    bool
	Events          []Event
	EndEvents       []Event
}

// TimerTrigger fires at FireDate and, when Recurrence is non-zero,
// periodically afterwards.
type TimerTrigger struct {
	TriggerBase
	FireDate   time.Time
	Recurrence time.Duration
}

// Event is one of the concrete event kinds below.
type Event interface {
	Entity
	isEvent()
}

// Region is a circular geographic area.
type Region struct {
	Latitude  float64
	Longitude float64
	Radius    float64
}

// LocationEvent fires on entering or leaving Region.
type LocationEvent struct {
	UUID          string
	NotifyOnEntry bool
	NotifyOnExit  bool
	Region        *Region
}

// CalendarEvent fires at a wall-clock time.
type CalendarEvent struct {
	UUID     string
	FireDate time.Time
}

// SignificantTimeEvent fires relative to sunrise or sunset.
type SignificantTimeEvent struct {
	UUID             string
	SignificantEvent string
	Offset           time.Duration
}

// DurationEvent fires after a duration has elapsed.
type DurationEvent struct {
	UUID     string
	Duration time.Duration
}

// CharacteristicEvent fires when Characteristic changes. A nil TriggerValue
// means any change fires.
type CharacteristicEvent struct {
	UUID           string
	Characteristic *Characteristic
	TriggerValue   any
}

// CharacteristicThresholdRangeEvent fires when Characteristic enters the
// range. Either bound may be nil.
type CharacteristicThresholdRangeEvent struct {
	UUID           string
	Characteristic *Characteristic
	Min            any
	Max            any
}

// PresenceEvent fires on users arriving or leaving.
type PresenceEvent struct {
	UUID         string
	PresenceType string
	UserType     string
}

func (h *Home) EntityUUID() string         { return h.UUID }
func (h *Home) EntityName() string         { return h.Name }
func (r *Room) EntityUUID() string         { return r.UUID }
func (r *Room) EntityName() string         { return r.Name }
func (z *Zone) EntityUUID() string         { return z.UUID }
func (z *Zone) EntityName() string         { return z.Name }
func (a *Accessory) EntityUUID() string    { return a.UUID }
func (a *Accessory) EntityName() string    { return a.Name }
func (p *Profile) EntityUUID() string      { return p.UUID }
func (s *Service) EntityUUID() string      { return s.UUID }
func (s *Service) EntityName() string      { return s.Name }
func (g *ServiceGroup) EntityUUID() string { return g.UUID }
func (g *ServiceGroup) EntityName() string { return g.Name }
func (c *Characteristic) EntityUUID() string {
	return c.UUID
}

func (a *ActionSet) EntityUUID() string { return a.UUID }
func (a *ActionSet) EntityName() string { return a.Name }

func (a *GenericAction) EntityUUID() string             { return a.UUID }
func (a *CharacteristicWriteAction) EntityUUID() string { return a.UUID }
func (*GenericAction) isAction()                        {}
func (*CharacteristicWriteAction) isAction()            {}

func (t *TriggerBase) EntityUUID() string   { return t.UUID }
func (t *TriggerBase) EntityName() string   { return t.Name }
func (t *TriggerBase) Common() *TriggerBase { return t }
func (*EventTrigger) isTrigger()            {}
func (*TimerTrigger) isTrigger()            {}

func (e *LocationEvent) EntityUUID() string                     { return e.UUID }
func (e *CalendarEvent) EntityUUID() string                     { return e.UUID }
func (e *SignificantTimeEvent) EntityUUID() string              { return e.UUID }
func (e *DurationEvent) EntityUUID() string                     { return e.UUID }
func (e *CharacteristicEvent) EntityUUID() string               { return e.UUID }
func (e *CharacteristicThresholdRangeEvent) EntityUUID() string { return e.UUID }
func (e *PresenceEvent) EntityUUID() string                     { return e.UUID }
func (*LocationEvent) isEvent()                                 {}
func (*CalendarEvent) isEvent()                                 {}
func (*SignificantTimeEvent) isEvent()                          {}
func (*DurationEvent) isEvent()                                 {}
func (*CharacteristicEvent) isEvent()                           {}
func (*CharacteristicThresholdRangeEvent) isEvent()             {}
func (*PresenceEvent) isEvent()                                 {}

