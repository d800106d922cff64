package wire

// Every request scoped to a home carries a Home selector: a pattern matched
// against home names and uuids. The empty selector picks the primary home.
// NameFilter patterns follow the same rules.

// EnumerateHomesRequest lists homes.
type EnumerateHomesRequest struct {
	NameFilter string `json:"name_filter,omitempty"`
}

// EnumerateHomesResponse carries the matching homes.
type EnumerateHomesResponse struct {
	Homes []HomeInformation `json:"homes"`
}

// EnumerateRoomsRequest lists rooms of one home.
type EnumerateRoomsRequest struct {
	Home       string `json:"home,omitempty"`
	NameFilter string `json:"name_filter,omitempty"`
}

// EnumerateRoomsResponse lists rooms; the whole-home room comes first.
type EnumerateRoomsResponse struct {
	Home  HomeReference     `json:"home"`
	Rooms []RoomInformation `json:"rooms"`
}

// EnumerateZonesRequest lists zones of one home. RoomFilter keeps zones that
// contain at least one matching room.
type EnumerateZonesRequest struct {
	Home       string `json:"home,omitempty"`
	NameFilter string `json:"name_filter,omitempty"`
	RoomFilter string `json:"room_filter,omitempty"`
}

// EnumerateZonesResponse carries the matching zones.
type EnumerateZonesResponse struct {
	Home  HomeReference     `json:"home"`
	Zones []ZoneInformation `json:"zones"`
}

// EnumerateAccessoriesRequest lists accessories of one home, narrowed by
// zone, then room, then name.
type EnumerateAccessoriesRequest struct {
	Home       string `json:"home,omitempty"`
	NameFilter string `json:"name_filter,omitempty"`
	ZoneFilter string `json:"zone_filter,omitempty"`
	RoomFilter string `json:"room_filter,omitempty"`
}

// EnumerateAccessoriesResponse carries the matching accessories.
type EnumerateAccessoriesResponse struct {
	Home        HomeReference          `json:"home"`
	Accessories []AccessoryInformation `json:"accessories"`
}

// EnumerateServiceGroupsRequest lists service groups of one home.
type EnumerateServiceGroupsRequest struct {
	Home       string `json:"home,omitempty"`
	NameFilter string `json:"name_filter,omitempty"`
}

// EnumerateServiceGroupsResponse carries the matching service groups.
type EnumerateServiceGroupsResponse struct {
	Home          HomeReference             `json:"home"`
	ServiceGroups []ServiceGroupInformation `json:"service_groups"`
}

// EnumerateServicesRequest lists services across all accessories of one
// home. An empty Types list does not constrain the type.
type EnumerateServicesRequest struct {
	Home       string        `json:"home,omitempty"`
	NameFilter string        `json:"name_filter,omitempty"`
	Types      []ServiceType `json:"types,omitempty"`
}

// EnumerateServicesResponse carries the matching services.
type EnumerateServicesResponse struct {
	Home     HomeReference        `json:"home"`
	Services []ServiceInformation `json:"services"`
}

// EnumerateActionSetsRequest lists action sets of one home.
type EnumerateActionSetsRequest struct {
	Home       string `json:"home,omitempty"`
	NameFilter string `json:"name_filter,omitempty"`
}

// EnumerateActionSetsResponse carries the matching action sets.
type EnumerateActionSetsResponse struct {
	Home       HomeReference          `json:"home"`
	ActionSets []ActionSetInformation `json:"action_sets"`
}

// EnumerateTriggersRequest lists triggers of one home. Before and After are
// unix seconds; 0 leaves that bound open.
type EnumerateTriggersRequest struct {
	Home          string        `json:"home,omitempty"`
	NameFilter    string        `json:"name_filter,omitempty"`
	EnabledFilter EnabledFilter `json:"enabled_filter,omitempty"`
	Before        uint64        `json:"before,omitempty"`
	After         uint64        `json:"after,omitempty"`
}

// EnumerateTriggersResponse carries the matching triggers.
type EnumerateTriggersResponse struct {
	Home     HomeReference        `json:"home"`
	Triggers []TriggerInformation `json:"triggers"`
}

// AddRemoveRoomRequest would add or remove a room.
type AddRemoveRoomRequest struct {
	Home        string        `json:"home,omitempty"`
	Name        string        `json:"name"`
	Accessories []string      `json:"accessories,omitempty"`
	Operation   RoomOperation `json:"operation"`
}

// WriteCharacteristicRequest would write Value to a characteristic.
type WriteCharacteristicRequest struct {
	Home           string `json:"home,omitempty"`
	Characteristic string `json:"characteristic"`
	Value          *Value `json:"value"`
}

// ExecuteActionSetRequest would run an action set.
type ExecuteActionSetRequest struct {
	Home      string `json:"home,omitempty"`
	ActionSet string `json:"action_set"`
}

// Empty is the response of operations that return nothing.
type Empty struct{}

// Count implementations report how many items a response carries.

func (r *EnumerateHomesResponse) Count() int         { return len(r.Homes) }
func (r *EnumerateRoomsResponse) Count() int         { return len(r.Rooms) }
func (r *EnumerateZonesResponse) Count() int         { return len(r.Zones) }
func (r *EnumerateAccessoriesResponse) Count() int   { return len(r.Accessories) }
func (r *EnumerateServiceGroupsResponse) Count() int { return len(r.ServiceGroups) }
func (r *EnumerateServicesResponse) Count() int      { return len(r.Services) }
func (r *EnumerateActionSetsResponse) Count() int    { return len(r.ActionSets) }
func (r *EnumerateTriggersResponse) Count() int      { return len(r.Triggers) }

// HomeSelector implementations return the home a request is scoped to.

func (r *EnumerateRoomsRequest) HomeSelector() string         { return r.Home }
func (r *EnumerateZonesRequest) HomeSelector() string         { return r.Home }
func (r *EnumerateAccessoriesRequest) HomeSelector() string   { return r.Home }
func (r *EnumerateServiceGroupsRequest) HomeSelector() string { return r.Home }
func (r *EnumerateServicesRequest) HomeSelector() string      { return r.Home }
func (r *EnumerateActionSetsRequest) HomeSelector() string    { return r.Home }
func (r *EnumerateTriggersRequest) HomeSelector() string      { return r.Home }
func (r *AddRemoveRoomRequest) HomeSelector() string          { return r.Home }
func (r *WriteCharacteristicRequest) HomeSelector() string    { return r.Home }
func (r *ExecuteActionSetRequest) HomeSelector() string       { return r.Home }
