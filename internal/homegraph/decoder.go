package homegraph

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed snapshot.schema.json
var snapshotSchema []byte

const schemaResource = "snapshot.schema.json"

// defaultRoomName is used for the whole-home room when a document omits it.
const defaultRoomName = "Default Room"

// hapBaseSuffix completes a short accessory-protocol type identifier.
const hapBaseSuffix = "-0000-1000-8000-0026BB765291"

// Decoder turns snapshot documents (YAML or JSON) into linked graphs.
type Decoder struct {
	schema *jsonschema.Schema
}

// NewDecoder creates a decoder. When validate is true every document is
// checked against the embedded snapshot schema before decoding.
func NewDecoder(validate bool) (*Decoder, error) {
	d := &Decoder{}
	if !validate {
		return d, nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(snapshotSchema))
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaResource, doc); err != nil {
		return nil, fmt.Errorf("adding snapshot schema: %w", err)
	}
	compiled, err := c.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compiling snapshot schema: %w", err)
	}
	d.schema = compiled
	return d, nil
}

// DecodeFile reads and decodes a snapshot document from disk.
func (d *Decoder) DecodeFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return d.Decode(data, "file:"+path)
}

// Decode parses data, validates it and links it into a Snapshot.
// YAML is a superset of JSON so both are accepted.
func (d *Decoder) Decode(data []byte, source string) (*Snapshot, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	if d.schema != nil {
		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(normalized))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		if err := d.schema.Validate(inst); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
		}
	}

	var doc snapshotDoc
	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	homes := make([]*Home, 0, len(doc.Homes))
	seen := make(map[string]struct{}, len(doc.Homes))
	for i := range doc.Homes {
		h, err := linkHome(&doc.Homes[i])
		if err != nil {
			return nil, fmt.Errorf("home %q: %w", doc.Homes[i].Name, err)
		}
		if _, dup := seen[h.UUID]; dup {
			return nil, fmt.Errorf("%w: home %s", ErrDuplicateUUID, h.UUID)
		}
		seen[h.UUID] = struct{}{}
		homes = append(homes, h)
	}
	return NewSnapshot(homes, source), nil
}

// index resolves references within one home by uuid or, failing that,
// by exact name.
type index[T any] struct {
	kind   string
	byUUID map[string]T
	byName map[string]T
}

func newIndex[T any](kind string) *index[T] {
	return &index[T]{kind: kind, byUUID: make(map[string]T), byName: make(map[string]T)}
}

func (ix *index[T]) add(id, name string, v T) error {
	if _, dup := ix.byUUID[id]; dup {
		return fmt.Errorf("%w: %s %s", ErrDuplicateUUID, ix.kind, id)
	}
	ix.byUUID[id] = v
	if name != "" {
		if _, taken := ix.byName[name]; !taken {
			ix.byName[name] = v
		}
	}
	return nil
}

func (ix *index[T]) lookup(ref string) (T, error) {
	if u, err := uuid.Parse(ref); err == nil {
		if v, ok := ix.byUUID[canonical(u)]; ok {
			return v, nil
		}
	}
	if v, ok := ix.byName[ref]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrDanglingReference, ix.kind, ref)
}

func (ix *index[T]) lookupAll(refs []string) ([]T, error) {
	out := make([]T, 0, len(refs))
	for _, ref := range refs {
		v, err := ix.lookup(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type linker struct {
	home            *Home
	rooms           *index[*Room]
	accessories     *index[*Accessory]
	services        *index[*Service]
	characteristics *index[*Characteristic]
	actionSets      *index[*ActionSet]

	// deferred holds link steps that need every service of the home.
	deferred []func() error
}

func linkHome(doc *homeDoc) (*Home, error) {
	id, err := entityUUID(doc.UUID, "", "home", doc.Name)
	if err != nil {
		return nil, err
	}
	hub := doc.HubState
	if hub == "" {
		hub = HubStateNotAvailable
	}
	l := &linker{
		home:            &Home{UUID: id, Name: doc.Name, IsPrimary: doc.Primary, HubState: hub},
		rooms:           newIndex[*Room]("room"),
		accessories:     newIndex[*Accessory]("accessory"),
		services:        newIndex[*Service]("service"),
		characteristics: newIndex[*Characteristic]("characteristic"),
		actionSets:      newIndex[*ActionSet]("action set"),
	}

	steps := []func(*homeDoc) error{
		l.linkRooms,
		l.linkZones,
		l.linkAccessories,
		l.runDeferred,
		l.linkServiceGroups,
		l.linkActionSets,
		l.linkTriggers,
	}
	for _, step := range steps {
		if err := step(doc); err != nil {
			return nil, err
		}
	}
	return l.home, nil
}

func (l *linker) newRoom(doc roomDoc) (*Room, error) {
	id, err := entityUUID(doc.UUID, l.home.UUID, "room", doc.Name)
	if err != nil {
		return nil, err
	}
	r := &Room{UUID: id, Name: doc.Name}
	if err := l.rooms.add(id, doc.Name, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (l *linker) linkRooms(doc *homeDoc) error {
	whole := roomDoc{Name: defaultRoomName}
	if doc.RoomForEntireHome != nil {
		whole = *doc.RoomForEntireHome
	}
	r, err := l.newRoom(whole)
	if err != nil {
		return err
	}
	l.home.RoomForEntireHome = r

	for _, rd := range doc.Rooms {
		r, err := l.newRoom(rd)
		if err != nil {
			return err
		}
		l.home.Rooms = append(l.home.Rooms, r)
	}
	return nil
}

func (l *linker) linkZones(doc *homeDoc) error {
	for _, zd := range doc.Zones {
		id, err := entityUUID(zd.UUID, l.home.UUID, "zone", zd.Name)
		if err != nil {
			return err
		}
		rooms, err := l.rooms.lookupAll(zd.Rooms)
		if err != nil {
			return fmt.Errorf("zone %q: %w", zd.Name, err)
		}
		l.home.Zones = append(l.home.Zones, &Zone{UUID: id, Name: zd.Name, Rooms: rooms})
	}
	return nil
}

func (l *linker) linkAccessories(doc *homeDoc) error {
	for i := range doc.Accessories {
		ad := &doc.Accessories[i]
		id, err := entityUUID(ad.UUID, l.home.UUID, "accessory", ad.Name)
		if err != nil {
			return err
		}
		a := &Accessory{
			UUID:             id,
			Name:             ad.Name,
			Category:         ad.Category,
			IsReachable:      ad.Reachable,
			IsBlocked:        ad.Blocked,
			IsBridged:        ad.Bridged,
			SupportsIdentify: ad.SupportsIdentify,
			Manufacturer:     ad.Manufacturer,
			Model:            ad.Model,
			FirmwareVersion:  ad.FirmwareVersion,
		}
		if a.Category == "" {
			a.Category = AccessoryCategoryOther
		}
		if ad.Room != "" {
			if a.Room, err = l.rooms.lookup(ad.Room); err != nil {
				return fmt.Errorf("accessory %q: %w", ad.Name, err)
			}
		}
		if err := l.accessories.add(id, ad.Name, a); err != nil {
			return err
		}

		for j := range ad.Services {
			svc, err := l.newService(a, &ad.Services[j], j)
			if err != nil {
				return fmt.Errorf("accessory %q: %w", ad.Name, err)
			}
			a.Services = append(a.Services, svc)
		}

		for j, pd := range ad.Profiles {
			pid, err := entityUUID(pd.UUID, id, "profile", fmt.Sprint(j))
			if err != nil {
				return err
			}
			p := &Profile{UUID: pid, NetworkAccessRestricted: pd.NetworkAccessRestricted}
			a.Profiles = append(a.Profiles, p)
			refs := pd.Services
			l.deferred = append(l.deferred, func() (err error) {
				p.Services, err = l.services.lookupAll(refs)
				return err
			})
		}

		bridged := ad.BridgedAccessories
		l.deferred = append(l.deferred, func() error {
			for _, ref := range bridged {
				b, err := l.accessories.lookup(ref)
				if err != nil {
					return fmt.Errorf("accessory %q: %w", a.Name, err)
				}
				a.BridgedAccessoryUUIDs = append(a.BridgedAccessoryUUIDs, b.UUID)
			}
			return nil
		})

		l.home.Accessories = append(l.home.Accessories, a)
	}
	return nil
}

func (l *linker) newService(a *Accessory, sd *serviceDoc, pos int) (*Service, error) {
	typ := expandType(sd.Type)
	key := sd.Name
	if key == "" {
		key = fmt.Sprintf("%s#%d", typ, pos)
	}
	id, err := entityUUID(sd.UUID, a.UUID, "service", key)
	if err != nil {
		return nil, err
	}
	svc := &Service{
		UUID:           id,
		Name:           sd.Name,
		Type:           typ,
		AssociatedType: sd.AssociatedType,
		IsPrimary:      sd.Primary,
		IsInteractive:  sd.Interactive,
	}
	if err := l.services.add(id, sd.Name, svc); err != nil {
		return nil, err
	}

	for k := range sd.Characteristics {
		cd := &sd.Characteristics[k]
		ctyp := expandType(cd.Type)
		cid, err := entityUUID(cd.UUID, id, "characteristic", fmt.Sprintf("%s#%d", ctyp, k))
		if err != nil {
			return nil, err
		}
		c := &Characteristic{
			UUID:        cid,
			Type:        ctyp,
			Description: cd.Description,
			Properties:  cd.Properties,
			Value:       cd.Value,
		}
		if md := cd.Metadata; md != nil {
			c.Metadata = &Metadata{
				Format:                  md.Format,
				Units:                   md.Units,
				ManufacturerDescription: md.ManufacturerDescription,
				MinimumValue:            md.MinimumValue,
				MaximumValue:            md.MaximumValue,
				StepValue:               md.StepValue,
				MaxLength:               md.MaxLength,
				ValidValues:             md.ValidValues,
			}
		}
		if err := l.characteristics.add(cid, "", c); err != nil {
			return nil, err
		}
		svc.Characteristics = append(svc.Characteristics, c)
	}

	linked := sd.LinkedServices
	l.deferred = append(l.deferred, func() (err error) {
		svc.LinkedServices, err = l.services.lookupAll(linked)
		return err
	})
	return svc, nil
}

func (l *linker) runDeferred(*homeDoc) error {
	for _, fn := range l.deferred {
		if err := fn(); err != nil {
			return err
		}
	}
	l.deferred = nil
	return nil
}

func (l *linker) linkServiceGroups(doc *homeDoc) error {
	for _, gd := range doc.ServiceGroups {
		id, err := entityUUID(gd.UUID, l.home.UUID, "service group", gd.Name)
		if err != nil {
			return err
		}
		services, err := l.services.lookupAll(gd.Services)
		if err != nil {
			return fmt.Errorf("service group %q: %w", gd.Name, err)
		}
		l.home.ServiceGroups = append(l.home.ServiceGroups, &ServiceGroup{UUID: id, Name: gd.Name, Services: services})
	}
	return nil
}

func (l *linker) linkActionSets(doc *homeDoc) error {
	for _, sd := range doc.ActionSets {
		id, err := entityUUID(sd.UUID, l.home.UUID, "action set", sd.Name)
		if err != nil {
			return err
		}
		typ := sd.Type
		if typ == "" {
			typ = ActionSetTypeUserDefined
		}
		set := &ActionSet{UUID: id, Name: sd.Name, Type: typ, IsExecuting: sd.Executing}

		for i, ad := range sd.Actions {
			aid, err := entityUUID(ad.UUID, id, "action", fmt.Sprint(i))
			if err != nil {
				return err
			}
			switch ad.Kind {
			case actionKindCharacteristicWrite:
				c, err := l.characteristics.lookup(ad.Characteristic)
				if err != nil {
					return fmt.Errorf("action set %q: %w", sd.Name, err)
				}
				set.Actions = append(set.Actions, &CharacteristicWriteAction{UUID: aid, Characteristic: c, TargetValue: ad.TargetValue})
			case actionKindGeneric, "":
				set.Actions = append(set.Actions, &GenericAction{UUID: aid})
			default:
				return fmt.Errorf("%w: action set %q: unknown action kind %q", ErrInvalidSnapshot, sd.Name, ad.Kind)
			}
		}

		if err := l.actionSets.add(id, sd.Name, set); err != nil {
			return err
		}
		l.home.ActionSets = append(l.home.ActionSets, set)
	}
	return nil
}

func (l *linker) linkTriggers(doc *homeDoc) error {
	for i := range doc.Triggers {
		td := &doc.Triggers[i]
		id, err := entityUUID(td.UUID, l.home.UUID, "trigger", td.Name)
		if err != nil {
			return err
		}
		sets, err := l.actionSets.lookupAll(td.ActionSets)
		if err != nil {
			return fmt.Errorf("trigger %q: %w", td.Name, err)
		}
		base := TriggerBase{UUID: id, Name: td.Name, IsEnabled: td.Enabled, ActionSets: sets}
		if td.LastFireDate != nil {
			t := td.LastFireDate.UTC()
			base.LastFireDate = &t
		}

		switch td.Kind {
		case triggerKindEvent:
			state := td.ActivationState
			if state == "" {
				state = ActivationStateEnabled
				if !td.Enabled {
					state = ActivationStateDisabled
				}
			}
			et := &EventTrigger{TriggerBase: base, ActivationState: state, ExecutesOnce: td.ExecutesOnce}
			if et.Events, err = l.linkEvents(id, "event", td.Events); err != nil {
				return fmt.Errorf("trigger %q: %w", td.Name, err)
			}
			if et.EndEvents, err = l.linkEvents(id, "end event", td.EndEvents); err != nil {
				return fmt.Errorf("trigger %q: %w", td.Name, err)
			}
			l.home.Triggers = append(l.home.Triggers, et)
		case triggerKindTimer:
			tt := &TimerTrigger{TriggerBase: base, Recurrence: seconds(td.Recurrence)}
			if td.FireDate != nil {
				tt.FireDate = td.FireDate.UTC()
			}
			l.home.Triggers = append(l.home.Triggers, tt)
		default:
			return fmt.Errorf("%w: trigger %q: unknown trigger kind %q", ErrInvalidSnapshot, td.Name, td.Kind)
		}
	}
	return nil
}

func (l *linker) linkEvents(parent, kind string, docs []eventDoc) ([]Event, error) {
	events := make([]Event, 0, len(docs))
	for i := range docs {
		ed := &docs[i]
		id, err := entityUUID(ed.UUID, parent, kind, fmt.Sprint(i))
		if err != nil {
			return nil, err
		}

		var ev Event
		switch ed.Kind {
		case eventKindLocation:
			le := &LocationEvent{UUID: id, NotifyOnEntry: ed.NotifyOnEntry, NotifyOnExit: ed.NotifyOnExit}
			if ed.Region != nil {
				le.Region = &Region{Latitude: ed.Region.Latitude, Longitude: ed.Region.Longitude, Radius: ed.Region.Radius}
			}
			ev = le
		case eventKindCalendar:
			ce := &CalendarEvent{UUID: id}
			if ed.FireDate != nil {
				ce.FireDate = ed.FireDate.UTC()
			}
			ev = ce
		case eventKindSignificantTime:
			ev = &SignificantTimeEvent{UUID: id, SignificantEvent: ed.SignificantEvent, Offset: seconds(ed.Offset)}
		case eventKindDuration:
			ev = &DurationEvent{UUID: id, Duration: seconds(ed.Duration)}
		case eventKindCharacteristic:
			c, err := l.characteristics.lookup(ed.Characteristic)
			if err != nil {
				return nil, err
			}
			ev = &CharacteristicEvent{UUID: id, Characteristic: c, TriggerValue: ed.TriggerValue}
		case eventKindCharacteristicRange:
			c, err := l.characteristics.lookup(ed.Characteristic)
			if err != nil {
				return nil, err
			}
			ev = &CharacteristicThresholdRangeEvent{UUID: id, Characteristic: c, Min: ed.Min, Max: ed.Max}
		case eventKindPresence:
			ev = &PresenceEvent{UUID: id, PresenceType: ed.PresenceType, UserType: ed.UserType}
		default:
			return nil, fmt.Errorf("%w: unknown event kind %q", ErrInvalidSnapshot, ed.Kind)
		}
		events = append(events, ev)
	}
	return events, nil
}

// entityUUID validates an explicit uuid, or derives a stable one from the
// parent uuid, the entity kind and a key unique among its siblings.
func entityUUID(raw, parent, kind, key string) (string, error) {
	if raw != "" {
		u, err := uuid.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s %q", ErrInvalidUUID, kind, raw)
		}
		return canonical(u), nil
	}
	ns := uuid.NameSpaceURL
	if parent != "" {
		ns = uuid.MustParse(parent)
	}
	return canonical(uuid.NewSHA1(ns, []byte(kind+":"+key))), nil
}

func canonical(u uuid.UUID) string {
	return strings.ToUpper(u.String())
}

// expandType accepts a full type uuid or the short hexadecimal form used by
// the accessory protocol ("25" for power state).
func expandType(s string) string {
	if u, err := uuid.Parse(s); err == nil {
		return canonical(u)
	}
	if len(s) == 0 || len(s) > 8 {
		return s
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return s
		}
	}
	return strings.Repeat("0", 8-len(s)) + strings.ToUpper(s) + hapBaseSuffix
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
