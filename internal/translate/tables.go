package translate

import (
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

// bimap maps native string constants to wire enumerations and back. Native
// constants without a row translate to the zero (Invalid) wire value.
type bimap[W comparable] struct {
	toWire   map[string]W
	toNative map[W]string
}

func newBimap[W comparable](n int) *bimap[W] {
	return &bimap[W]{toWire: make(map[string]W, n), toNative: make(map[W]string, n)}
}

func (m *bimap[W]) add(w W, native string) {
	m.toWire[native] = w
	m.toNative[w] = native
}

func (m *bimap[W]) wire(native string) W {
	return m.toWire[native]
}

func (m *bimap[W]) native(w W) (string, bool) {
	s, ok := m.toNative[w]
	return s, ok
}

// pairs builds a bimap from a wire-keyed row map.
func pairs[W comparable](rows map[W]string) *bimap[W] {
	m := newBimap[W](len(rows))
	for w, s := range rows {
		m.add(w, s)
	}
	return m
}

var (
	serviceTypes = func() *bimap[wire.ServiceType] {
		m := newBimap[wire.ServiceType](len(serviceTypeRows))
		for _, r := range serviceTypeRows {
			m.add(r.code, r.native)
		}
		return m
	}()

	characteristicTypes = func() *bimap[wire.CharacteristicType] {
		m := newBimap[wire.CharacteristicType](len(characteristicTypeRows))
		for _, r := range characteristicTypeRows {
			m.add(r.code, r.native)
		}
		return m
	}()

	// defaultFormats is keyed by native characteristic type.
	defaultFormats = func() map[string]wire.Format {
		m := make(map[string]wire.Format, len(characteristicTypeRows))
		for _, r := range characteristicTypeRows {
			m[r.native] = r.defaultFormat
		}
		return m
	}()

	categories = func() *bimap[wire.Category] {
		m := newBimap[wire.Category](len(categoryRows))
		for _, r := range categoryRows {
			m.add(r.code, r.native)
		}
		return m
	}()

	formats = pairs(map[wire.Format]string{
		wire.FormatBool:       homegraph.FormatBool,
		wire.FormatInt:        homegraph.FormatInt,
		wire.FormatFloat:      homegraph.FormatFloat,
		wire.FormatString:     homegraph.FormatString,
		wire.FormatArray:      homegraph.FormatArray,
		wire.FormatDictionary: homegraph.FormatDict,
		wire.FormatUInt8:      homegraph.FormatUInt8,
		wire.FormatUInt16:     homegraph.FormatUInt16,
		wire.FormatUInt32:     homegraph.FormatUInt32,
		wire.FormatUInt64:     homegraph.FormatUInt64,
		wire.FormatData:       homegraph.FormatData,
		wire.FormatTLV8:       homegraph.FormatTLV8,
	})

	units = pairs(map[wire.Units]string{
		wire.UnitsCelsius:                 homegraph.UnitCelsius,
		wire.UnitsFahrenheit:              homegraph.UnitFahrenheit,
		wire.UnitsPercentage:              homegraph.UnitPercentage,
		wire.UnitsArcDegree:               homegraph.UnitArcDegree,
		wire.UnitsSeconds:                 homegraph.UnitSeconds,
		wire.UnitsLux:                     homegraph.UnitLux,
		wire.UnitsPartsPerMillion:         homegraph.UnitPartsPerMillion,
		wire.UnitsMicrogramsPerCubicMeter: homegraph.UnitMicrogramsPerCubicMeter,
	})

	properties = pairs(map[wire.Property]string{
		wire.PropertyReadable:                  homegraph.PropertyReadable,
		wire.PropertyWritable:                  homegraph.PropertyWritable,
		wire.PropertySupportsEventNotification: homegraph.PropertySupportsEventNotification,
		wire.PropertyHidden:                    homegraph.PropertyHidden,
		wire.PropertyRequiresAuthorizationData: homegraph.PropertyRequiresAuthorizationData,
	})

	actionSetTypes = pairs(map[wire.ActionSetType]string{
		wire.ActionSetTypeWakeUp:        homegraph.ActionSetTypeWakeUp,
		wire.ActionSetTypeSleep:         homegraph.ActionSetTypeSleep,
		wire.ActionSetTypeHomeDeparture: homegraph.ActionSetTypeHomeDeparture,
		wire.ActionSetTypeHomeArrival:   homegraph.ActionSetTypeHomeArrival,
		wire.ActionSetTypeUserDefined:   homegraph.ActionSetTypeUserDefined,
		wire.ActionSetTypeTriggerOwned:  homegraph.ActionSetTypeTriggerOwned,
	})

	activationStates = pairs(map[wire.ActivationState]string{
		wire.ActivationStateEnabled:                                 homegraph.ActivationStateEnabled,
		wire.ActivationStateDisabled:                                homegraph.ActivationStateDisabled,
		wire.ActivationStateDisabledNoHomeHub:                       homegraph.ActivationStateDisabledNoHomeHub,
		wire.ActivationStateDisabledNoCompatibleHomeHub:             homegraph.ActivationStateDisabledNoCompatibleHomeHub,
		wire.ActivationStateDisabledNoLocationServicesAuthorization: homegraph.ActivationStateDisabledNoLocationServicesAuthorization,
	})

	significantEvents = pairs(map[wire.SignificantEvent]string{
		wire.SignificantEventSunrise: homegraph.SignificantEventSunrise,
		wire.SignificantEventSunset:  homegraph.SignificantEventSunset,
	})

	presenceEvents = pairs(map[wire.PresenceEventType]string{
		wire.PresenceEventEveryEntry: homegraph.PresenceEveryEntry,
		wire.PresenceEventEveryExit:  homegraph.PresenceEveryExit,
		wire.PresenceEventFirstEntry: homegraph.PresenceFirstEntry,
		wire.PresenceEventLastExit:   homegraph.PresenceLastExit,
	})

	presenceUsers = pairs(map[wire.PresenceUserType]string{
		wire.PresenceUserCurrentUser: homegraph.PresenceUserCurrentUser,
		wire.PresenceUserHomeUsers:   homegraph.PresenceUserHomeUsers,
		wire.PresenceUserCustomUsers: homegraph.PresenceUserCustomUsers,
	})

	hubStates = pairs(map[wire.HubState]string{
		wire.HubStateNotAvailable: homegraph.HubStateNotAvailable,
		wire.HubStateConnected:    homegraph.HubStateConnected,
		wire.HubStateDisconnected: homegraph.HubStateDisconnected,
	})
)

// ServiceType translates a native service type.
func ServiceType(native string) wire.ServiceType { return serviceTypes.wire(native) }

// NativeServiceType is the reverse of ServiceType.
func NativeServiceType(t wire.ServiceType) (string, bool) { return serviceTypes.native(t) }

// CharacteristicType translates a native characteristic type.
func CharacteristicType(native string) wire.CharacteristicType {
	return characteristicTypes.wire(native)
}

// NativeCharacteristicType is the reverse of CharacteristicType.
func NativeCharacteristicType(t wire.CharacteristicType) (string, bool) {
	return characteristicTypes.native(t)
}

// DefaultFormat is the value format a characteristic type has when its
// metadata does not say otherwise. Unknown types yield FormatInvalid.
func DefaultFormat(nativeType string) wire.Format { return defaultFormats[nativeType] }

// Category translates a native accessory category.
func Category(native string) wire.Category { return categories.wire(native) }

// Format translates a native value format.
func Format(native string) wire.Format { return formats.wire(native) }

// NativeFormat is the reverse of Format. FormatInvalid yields "".
func NativeFormat(f wire.Format) string {
	s, _ := formats.native(f)
	return s
}

// Units translates a native unit.
func Units(native string) wire.Units { return units.wire(native) }

// Property translates a native characteristic property.
func Property(native string) wire.Property { return properties.wire(native) }

// ActionSetType translates a native action set type.
func ActionSetType(native string) wire.ActionSetType { return actionSetTypes.wire(native) }

// ActivationState translates a native event trigger activation state.
func ActivationState(native string) wire.ActivationState { return activationStates.wire(native) }

// SignificantEvent translates a native solar event.
func SignificantEvent(native string) wire.SignificantEvent { return significantEvents.wire(native) }

// PresenceEventType translates a native presence event kind.
func PresenceEventType(native string) wire.PresenceEventType { return presenceEvents.wire(native) }

// PresenceUserType translates a native presence user scope.
func PresenceUserType(native string) wire.PresenceUserType { return presenceUsers.wire(native) }

// HubState translates a native hub state.
func HubState(native string) wire.HubState { return hubStates.wire(native) }
