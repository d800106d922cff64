package homegraph

// Characteristic value formats.
const (
	FormatBool   = "bool"
	FormatInt    = "int"
	FormatFloat  = "float"
	FormatString = "string"
	FormatArray  = "array"
	FormatDict   = "dict"
	FormatUInt8  = "uint8"
	FormatUInt16 = "uint16"
	FormatUInt32 = "uint32"
	FormatUInt64 = "uint64"
	FormatData   = "data"
	FormatTLV8   = "tlv8"
)

// Characteristic value units.
const (
	UnitCelsius                 = "celsius"
	UnitFahrenheit              = "fahrenheit"
	UnitPercentage              = "percentage"
	UnitArcDegree               = "arcdegrees"
	UnitSeconds                 = "seconds"
	UnitLux                     = "lux"
	UnitPartsPerMillion         = "ppm"
	UnitMicrogramsPerCubicMeter = "micrograms/m^3"
)

// Characteristic properties.
const (
	PropertyReadable                  = "HMCharacteristicPropertyReadable"
	PropertyWritable                  = "HMCharacteristicPropertyWritable"
	PropertySupportsEventNotification = "HMCharacteristicPropertySupportsEventNotification"
	PropertyHidden                    = "HMCharacteristicPropertyHidden"
	PropertyRequiresAuthorizationData = "HMCharacteristicPropertyRequiresAuthorizationData"
)

// Action set types.
const (
	ActionSetTypeWakeUp        = "HMActionSetTypeWakeUp"
	ActionSetTypeSleep         = "HMActionSetTypeSleep"
	ActionSetTypeHomeDeparture = "HMActionSetTypeHomeDeparture"
	ActionSetTypeHomeArrival   = "HMActionSetTypeHomeArrival"
	ActionSetTypeUserDefined   = "HMActionSetTypeUserDefined"
	ActionSetTypeTriggerOwned  = "HMActionSetTypeTriggerOwned"
)

// Event trigger activation states.
const (
	ActivationStateEnabled                                 = "enabled"
	ActivationStateDisabled                                = "disabled"
	ActivationStateDisabledNoHomeHub                       = "disabledNoHomeHub"
	ActivationStateDisabledNoCompatibleHomeHub             = "disabledNoCompatibleHomeHub"
	ActivationStateDisabledNoLocationServicesAuthorization = "disabledNoLocationServicesAuthorization"
)

// Significant solar events.
const (
	SignificantEventSunrise = "sunrise"
	SignificantEventSunset  = "sunset"
)

// Presence event kinds.
const (
	PresenceEveryEntry = "everyEntry"
	PresenceEveryExit  = "everyExit"
	PresenceFirstEntry = "firstEntry"
	PresenceLastExit   = "lastExit"
)

// Presence user scopes.
const (
	PresenceUserCurrentUser = "currentUser"
	PresenceUserHomeUsers   = "homeUsers"
	PresenceUserCustomUsers = "customUsers"
)

// Home hub states.
const (
	HubStateNotAvailable = "notAvailable"
	HubStateConnected    = "connected"
	HubStateDisconnected = "disconnected"
)
