package enumerate

import (
	"time"

	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/translate"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

func homeRef(h *homegraph.Home) wire.HomeReference {
	return wire.HomeReference{Name: h.Name, UUID: h.UUID}
}

func homeInfo(h *homegraph.Home) wire.HomeInformation {
	return wire.HomeInformation{
		Name:      h.Name,
		UUID:      h.UUID,
		IsPrimary: h.IsPrimary,
		HubState:  translate.HubState(h.HubState),
	}
}

func roomInfo(r *homegraph.Room) wire.RoomInformation {
	return wire.RoomInformation{Name: r.Name, UUID: r.UUID}
}

func roomRef(r *homegraph.Room) *wire.RoomReference {
	if r == nil {
		return nil
	}
	return &wire.RoomReference{Name: r.Name, UUID: r.UUID}
}

func zoneInfo(z *homegraph.Zone) wire.ZoneInformation {
	zi := wire.ZoneInformation{Name: z.Name, UUID: z.UUID, Rooms: make([]wire.RoomReference, 0, len(z.Rooms))}
	for _, r := range z.Rooms {
		zi.Rooms = append(zi.Rooms, *roomRef(r))
	}
	return zi
}

func accessoryInfo(a *homegraph.Accessory) wire.AccessoryInformation {
	ai := wire.AccessoryInformation{
		Name:             a.Name,
		UUID:             a.UUID,
		Room:             roomRef(a.Room),
		Category:         translate.Category(a.Category),
		Model:            a.Model,
		Manufacturer:     a.Manufacturer,
		FirmwareVersion:  a.FirmwareVersion,
		IsReachable:      a.IsReachable,
		IsBlocked:        a.IsBlocked,
		IsBridged:        a.IsBridged,
		SupportsIdentify: a.SupportsIdentify,
		Services:         make([]wire.ServiceInformation, 0, len(a.Services)),
	}
	for _, p := range a.Profiles {
		ai.Profiles = append(ai.Profiles, wire.ProfileInformation{
			UUID:                    p.UUID,
			NetworkAccessRestricted: p.NetworkAccessRestricted,
			Services:                serviceRefs(p.Services),
		})
	}
	for _, svc := range a.Services {
		ai.Services = append(ai.Services, serviceInfo(svc))
	}
	if a.Category == homegraph.AccessoryCategoryBridge {
		ai.BridgedAccessoryUUIDs = append([]string(nil), a.BridgedAccessoryUUIDs...)
	}
	return ai
}

func serviceRefs(services []*homegraph.Service) []wire.ServiceReference {
	refs := make([]wire.ServiceReference, 0, len(services))
	for _, svc := range services {
		refs = append(refs, wire.ServiceReference{Name: svc.Name, UUID: svc.UUID})
	}
	return refs
}

func serviceInfo(svc *homegraph.Service) wire.ServiceInformation {
	si := wire.ServiceInformation{
		Name:                  svc.Name,
		UUID:                  svc.UUID,
		IsPrimary:             svc.IsPrimary,
		IsInteractive:         svc.IsInteractive,
		ServiceType:           translate.ServiceType(svc.Type),
		AssociatedServiceType: svc.AssociatedType,
		Characteristics:       make([]wire.CharacteristicInformation, 0, len(svc.Characteristics)),
	}
	for _, c := range svc.Characteristics {
		si.Characteristics = append(si.Characteristics, characteristicInfo(c))
	}
	if len(svc.LinkedServices) > 0 {
		si.LinkedServices = serviceRefs(svc.LinkedServices)
	}
	return si
}

// characteristicInfo decodes the current value with the resolved format.
// Unknown properties are dropped; an undecodable value is omitted.
func characteristicInfo(c *homegraph.Characteristic) wire.CharacteristicInformation {
	ci := wire.CharacteristicInformation{
		UUID:                 c.UUID,
		LocalizedDescription: c.Description,
		Properties:           make([]wire.Property, 0, len(c.Properties)),
		CharacteristicType:   translate.CharacteristicType(c.Type),
		Metadata:             translate.EncodeMetadata(c.Type, c.Metadata),
		Value:                translate.DecodeValue(formatOf(c), c.Value),
	}
	for _, p := range c.Properties {
		if wp := translate.Property(p); wp != wire.PropertyInvalid {
			ci.Properties = append(ci.Properties, wp)
		}
	}
	return ci
}

func characteristicRef(c *homegraph.Characteristic) *wire.CharacteristicReference {
	return &wire.CharacteristicReference{Name: c.Description, UUID: c.UUID}
}

func formatOf(c *homegraph.Characteristic) wire.Format {
	return translate.ResolveFormat(c.Type, c.Metadata)
}

func actionSetInfo(set *homegraph.ActionSet) wire.ActionSetInformation {
	ai := wire.ActionSetInformation{
		Name:          set.Name,
		UUID:          set.UUID,
		ActionSetType: translate.ActionSetType(set.Type),
		IsExecuting:   set.IsExecuting,
		Actions:       make([]wire.ActionInformation, 0, len(set.Actions)),
	}
	for _, a := range set.Actions {
		ai.Actions = append(ai.Actions, actionInfo(a))
	}
	return ai
}

func actionInfo(a homegraph.Action) wire.ActionInformation {
	switch a := a.(type) {
	case *homegraph.CharacteristicWriteAction:
		ci := characteristicInfo(a.Characteristic)
		return wire.ActionInformation{CharacteristicAction: &wire.CharacteristicActionInformation{
			UUID:           a.UUID,
			Characteristic: &ci,
			TargetValue:    translate.DecodeValue(formatOf(a.Characteristic), a.TargetValue),
		}}
	default:
		return wire.ActionInformation{GenericAction: &wire.GenericActionInformation{UUID: a.EntityUUID()}}
	}
}

func triggerCommon(t *homegraph.TriggerBase) wire.TriggerCommon {
	tc := wire.TriggerCommon{
		Name:       t.Name,
		UUID:       t.UUID,
		IsEnabled:  t.IsEnabled,
		ActionSets: make([]wire.ActionSetReference, 0, len(t.ActionSets)),
	}
	if t.LastFireDate != nil {
		tc.LastFireDate = unixSeconds(*t.LastFireDate)
	}
	for _, set := range t.ActionSets {
		tc.ActionSets = append(tc.ActionSets, wire.ActionSetReference{Name: set.Name, UUID: set.UUID})
	}
	return tc
}

func triggerInfo(t homegraph.Trigger) wire.TriggerInformation {
	switch t := t.(type) {
	case *homegraph.EventTrigger:
		return wire.TriggerInformation{EventTrigger: &wire.EventTriggerInformation{
			Trigger:         triggerCommon(&t.TriggerBase),
			ActivationState: translate.ActivationState(t.ActivationState),
			ExecutesOnce:    t.ExecutesOnce,
			Events:          eventInfos(t.Events),
			EndEvents:       eventInfos(t.EndEvents),
		}}
	case *homegraph.TimerTrigger:
		return wire.TriggerInformation{TimerTrigger: &wire.TimerTriggerInformation{
			Trigger:    triggerCommon(&t.TriggerBase),
			FireDate:   unixSeconds(t.FireDate),
			Recurrence: uint64(max(t.Recurrence, 0) / time.Second),
		}}
	}
	return wire.TriggerInformation{}
}

func eventInfos(events []homegraph.Event) []wire.EventInformation {
	if len(events) == 0 {
		return nil
	}
	out := make([]wire.EventInformation, 0, len(events))
	for _, e := range events {
		out = append(out, eventInfo(e))
	}
	return out
}

func eventInfo(e homegraph.Event) wire.EventInformation {
	switch e := e.(type) {
	case *homegraph.LocationEvent:
		le := &wire.LocationEventInformation{UUID: e.UUID, NotifyOnEntry: e.NotifyOnEntry, NotifyOnExit: e.NotifyOnExit}
		if e.Region != nil {
			le.Region = &wire.CircularRegion{
				Center: wire.Coordinate{Latitude: e.Region.Latitude, Longitude: e.Region.Longitude},
				Radius: e.Region.Radius,
			}
		}
		return wire.EventInformation{LocationEvent: le}
	case *homegraph.CalendarEvent:
		return wire.EventInformation{CalendarEvent: &wire.CalendarEventInformation{UUID: e.UUID, FireDate: unixSeconds(e.FireDate)}}
	case *homegraph.SignificantTimeEvent:
		return wire.EventInformation{SignificantTimeEvent: &wire.SignificantTimeEventInformation{
			UUID:             e.UUID,
			SignificantEvent: translate.SignificantEvent(e.SignificantEvent),
			Offset:           int64(e.Offset / time.Second),
		}}
	case *homegraph.DurationEvent:
		return wire.EventInformation{DurationEvent: &wire.DurationEventInformation{
			UUID:     e.UUID,
			Duration: uint64(max(e.Duration, 0) / time.Second),
		}}
	case *homegraph.CharacteristicEvent:
		return wire.EventInformation{CharacteristicEvent: &wire.CharacteristicEventInformation{
			UUID:           e.UUID,
			Characteristic: characteristicRef(e.Characteristic),
			TriggerValue:   translate.DecodeValue(formatOf(e.Characteristic), e.TriggerValue),
		}}
	case *homegraph.CharacteristicThresholdRangeEvent:
		f := formatOf(e.Characteristic)
		return wire.EventInformation{CharacteristicThresholdRangeEvent: &wire.CharacteristicRangeEventInformation{
			UUID:           e.UUID,
			Characteristic: characteristicRef(e.Characteristic),
			Range: wire.NumberRange{
				MinValue: translate.EncodeNumber(f, e.Min),
				MaxValue: translate.EncodeNumber(f, e.Max),
			},
		}}
	case *homegraph.PresenceEvent:
		return wire.EventInformation{PresenceEvent: &wire.PresenceEventInformation{
			UUID:          e.UUID,
			PresenceEvent: translate.PresenceEventType(e.PresenceType),
			PresenceUser:  translate.PresenceUserType(e.UserType),
		}}
	}
	return wire.EventInformation{}
}

func unixSeconds(t time.Time) uint64 {
	if t.IsZero() || t.Unix() < 0 {
		return 0
	}
	return uint64(t.Unix())
}
