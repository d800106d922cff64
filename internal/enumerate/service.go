package enumerate

import (
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-homegraph/internal/filter"
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/translate"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

// Logger defines the logging interface used by the Service.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Source supplies the graph snapshot an operation runs against.
type Source interface {
	Snapshot() *homegraph.Snapshot
}

// Service answers enumeration requests.
type Service struct {
	source Source
	logger Logger
}

// New creates a Service reading from source.
func New(source Source) *Service {
	return &Service{source: source, logger: noopLogger{}}
}

// SetLogger sets the logger for the service.
func (s *Service) SetLogger(logger Logger) {
	s.logger = logger
}

func (s *Service) graph() (homegraph.Graph, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: no graph source", ErrInternal)
	}
	return s.source.Snapshot(), nil
}

func (s *Service) home(selector string) (*homegraph.Home, error) {
	g, err := s.graph()
	if err != nil {
		return nil, err
	}
	h, err := filter.ResolveHome(g.Homes(), selector)
	if err != nil {
		s.logger.Debug("home selector matched nothing", "selector", selector)
		return nil, fmt.Errorf("%w: home %q", ErrNotFound, selector)
	}
	return h, nil
}

// EnumerateHomes lists homes whose name or uuid matches the name filter.
func (s *Service) EnumerateHomes(req *wire.EnumerateHomesRequest) (*wire.EnumerateHomesResponse, error) {
	g, err := s.graph()
	if err != nil {
		return nil, err
	}
	homes := filter.Apply(g.Homes(), req.NameFilter)
	resp := &wire.EnumerateHomesResponse{Homes: make([]wire.HomeInformation, 0, len(homes))}
	for _, h := range homes {
		resp.Homes = append(resp.Homes, homeInfo(h))
	}
	return resp, nil
}

// EnumerateRooms lists the rooms of one home. The whole-home room is always
// first, followed by the rooms matching the name filter.
func (s *Service) EnumerateRooms(req *wire.EnumerateRoomsRequest) (*wire.EnumerateRoomsResponse, error) {
	h, err := s.home(req.Home)
	if err != nil {
		return nil, err
	}
	rooms := filter.Apply(h.Rooms, req.NameFilter)
	resp := &wire.EnumerateRoomsResponse{Home: homeRef(h), Rooms: make([]wire.RoomInformation, 0, len(rooms)+1)}
	if h.RoomForEntireHome != nil {
		resp.Rooms = append(resp.Rooms, roomInfo(h.RoomForEntireHome))
	}
	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, roomInfo(r))
	}
	return resp, nil
}

// EnumerateZones lists zones matching the name filter that contain at least
// one room matching the room filter.
func (s *Service) EnumerateZones(req *wire.EnumerateZonesRequest) (*wire.EnumerateZonesResponse, error) {
	h, err := s.home(req.Home)
	if err != nil {
		return nil, err
	}
	zones := filter.Apply(h.Zones, req.NameFilter)
	if req.RoomFilter != "" {
		rm, _ := filter.Compile(req.RoomFilter) //nolint:errcheck // invalid patterns match nothing
		zones = keep(zones, func(z *homegraph.Zone) bool {
			return len(filter.ApplyMatcher(z.Rooms, rm)) > 0
		})
	}

	resp := &wire.EnumerateZonesResponse{Home: homeRef(h), Zones: make([]wire.ZoneInformation, 0, len(zones))}
	for _, z := range zones {
		resp.Zones = append(resp.Zones, zoneInfo(z))
	}
	return resp, nil
}

// EnumerateAccessories narrows the home's accessories by zone, then room,
// then name. The zone filter keeps accessories whose room belongs to any
// matching zone; the room filter keeps accessories whose room matches.
// Accessories without a room are dropped by either constraint.
func (s *Service) EnumerateAccessories(req *wire.EnumerateAccessoriesRequest) (*wire.EnumerateAccessoriesResponse, error) {
	h, err := s.home(req.Home)
	if err != nil {
		return nil, err
	}
	accessories := h.Accessories

	if req.ZoneFilter != "" {
		inZone := make(map[*homegraph.Room]struct{})
		for _, z := range filter.Apply(h.Zones, req.ZoneFilter) {
			for _, r := range z.Rooms {
				inZone[r] = struct{}{}
			}
		}
		accessories = keep(accessories, func(a *homegraph.Accessory) bool {
			_, ok := inZone[a.Room]
			return a.Room != nil && ok
		})
	}

	if req.RoomFilter != "" {
		rm, _ := filter.Compile(req.RoomFilter) //nolint:errcheck // invalid patterns match nothing
		accessories = keep(accessories, func(a *homegraph.Accessory) bool {
			return a.Room != nil && rm.Match(a.Room)
		})
	}

	accessories = filter.Apply(accessories, req.NameFilter)

	resp := &wire.EnumerateAccessoriesResponse{Home: homeRef(h), Accessories: make([]wire.AccessoryInformation, 0, len(accessories))}
	for _, a := range accessories {
		resp.Accessories = append(resp.Accessories, accessoryInfo(a))
	}
	return resp, nil
}

// EnumerateServiceGroups lists service groups matching the name filter.
func (s *Service) EnumerateServiceGroups(req *wire.EnumerateServiceGroupsRequest) (*wire.EnumerateServiceGroupsResponse, error) {
	h, err := s.home(req.Home)
	if err != nil {
		return nil, err
	}
	groups := filter.Apply(h.ServiceGroups, req.NameFilter)
	resp := &wire.EnumerateServiceGroupsResponse{Home: homeRef(h), ServiceGroups: make([]wire.ServiceGroupInformation, 0, len(groups))}
	for _, g := range groups {
		resp.ServiceGroups = append(resp.ServiceGroups, wire.ServiceGroupInformation{
			Name:     g.Name,
			UUID:     g.UUID,
			Services: serviceRefs(g.Services),
		})
	}
	return resp, nil
}

// EnumerateServices lists services of every accessory in the home that
// match the name filter and, when Types is non-empty, one of the types.
func (s *Service) EnumerateServices(req *wire.EnumerateServicesRequest) (*wire.EnumerateServicesResponse, error) {
	h, err := s.home(req.Home)
	if err != nil {
		return nil, err
	}

	var services []*homegraph.Service
	for _, a := range h.Accessories {
		services = append(services, a.Services...)
	}

	if len(req.Types) > 0 {
		wanted := make(map[string]struct{}, len(req.Types))
		for _, t := range req.Types {
			if native, ok := translate.NativeServiceType(t); ok {
				wanted[native] = struct{}{}
			}
		}
		services = keep(services, func(svc *homegraph.Service) bool {
			_, ok := wanted[svc.Type]
			return ok
		})
	}

	services = filter.Apply(services, req.NameFilter)

	resp := &wire.EnumerateServicesResponse{Home: homeRef(h), Services: make([]wire.ServiceInformation, 0, len(services))}
	for _, svc := range services {
		resp.Services = append(resp.Services, serviceInfo(svc))
	}
	return resp, nil
}

// EnumerateActionSets lists action sets matching the name filter.
func (s *Service) EnumerateActionSets(req *wire.EnumerateActionSetsRequest) (*wire.EnumerateActionSetsResponse, error) {
	h, err := s.home(req.Home)
	if err != nil {
		return nil, err
	}
	sets := filter.Apply(h.ActionSets, req.NameFilter)
	resp := &wire.EnumerateActionSetsResponse{Home: homeRef(h), ActionSets: make([]wire.ActionSetInformation, 0, len(sets))}
	for _, set := range sets {
		resp.ActionSets = append(resp.ActionSets, actionSetInfo(set))
	}
	return resp, nil
}

// EnumerateTriggers lists triggers that pass the name filter, the enabled
// filter and the last-fired window. A trigger that has never fired is
// outside every window.
func (s *Service) EnumerateTriggers(req *wire.EnumerateTriggersRequest) (*wire.EnumerateTriggersResponse, error) {
	h, err := s.home(req.Home)
	if err != nil {
		return nil, err
	}
	if req.EnabledFilter < wire.EnabledFilterNone || req.EnabledFilter > wire.EnabledFilterDisabledOnly {
		return nil, fmt.Errorf("%w: enabled filter %v", ErrInvalidArgument, req.EnabledFilter)
	}

	triggers := filter.Apply(h.Triggers, req.NameFilter)
	triggers = keep(triggers, func(t homegraph.Trigger) bool {
		base := t.Common()
		return enabledMatches(req.EnabledFilter, base.IsEnabled) && firedWithin(base.LastFireDate, req.Before, req.After)
	})

	resp := &wire.EnumerateTriggersResponse{Home: homeRef(h), Triggers: make([]wire.TriggerInformation, 0, len(triggers))}
	for _, t := range triggers {
		resp.Triggers = append(resp.Triggers, triggerInfo(t))
	}
	return resp, nil
}

func enabledMatches(f wire.EnabledFilter, enabled bool) bool {
	switch f {
	case wire.EnabledFilterEnabledOnly:
		return enabled
	case wire.EnabledFilterDisabledOnly:
		return !enabled
	}
	return true
}

// firedWithin reports whether last lies strictly before `before` and
// strictly after `after`, each bound given in unix seconds with 0 meaning
// open. A nil last never qualifies.
func firedWithin(last *time.Time, before, after uint64) bool {
	if last == nil {
		return false
	}
	ts := last.Unix()
	if ts < 0 {
		return false
	}
	fired := uint64(ts)
	if before != 0 && fired >= before {
		return false
	}
	if after != 0 && fired <= after {
		return false
	}
	return true
}

// AddRemoveRoom is declared for clients but not supported.
func (s *Service) AddRemoveRoom(*wire.AddRemoveRoomRequest) (*wire.Empty, error) {
	return nil, fmt.Errorf("%w: AddRemoveRoom", ErrNotImplemented)
}

// WriteCharacteristic is declared for clients but not supported.
func (s *Service) WriteCharacteristic(*wire.WriteCharacteristicRequest) (*wire.Empty, error) {
	return nil, fmt.Errorf("%w: WriteCharacteristic", ErrNotImplemented)
}

// ExecuteActionSet is declared for clients but not supported.
func (s *Service) ExecuteActionSet(*wire.ExecuteActionSetRequest) (*wire.Empty, error) {
	return nil, fmt.Errorf("%w: ExecuteActionSet", ErrNotImplemented)
}

// keep returns the items for which fn is true, preserving order.
func keep[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if fn(it) {
			out = append(out, it)
		}
	}
	return out
}
