package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
)

const (
	argHome          = "home"
	argNameFilter    = "name_filter"
	argZoneFilter    = "zone_filter"
	argRoomFilter    = "room_filter"
	argTypes         = "types"
	argEnabledFilter = "enabled_filter"
	argBefore        = "before"
	argAfter         = "after"
)

const patternHelp = " Case-insensitive regular expression searched in the name, then the uuid."

func homeArg() mcp.ToolOption {
	return mcp.WithString(argHome,
		mcp.Description("Home name, uuid or pattern. Empty selects the primary home."+patternHelp),
	)
}

func nameFilterArg(what string) mcp.ToolOption {
	return mcp.WithString(argNameFilter,
		mcp.Description("Keep only "+what+" whose name or uuid matches."+patternHelp),
	)
}

// tool pairs a definition with its handler.
type tool = server.ServerTool

// tools lists every tool the server registers, one per read operation.
// The mutation operations are not offered as tools.
func (s *Server) tools() []tool {
	return []tool{
		{
			Tool: mcp.NewTool("enumerate_homes",
				mcp.WithDescription("List homes with their primary flag and hub state"),
				nameFilterArg("homes"),
			),
			Handler: s.operation(enumerate.OpEnumerateHomes),
		},
		{
			Tool: mcp.NewTool("enumerate_rooms",
				mcp.WithDescription("List the rooms of a home; the whole-home room comes first"),
				homeArg(),
				nameFilterArg("rooms"),
			),
			Handler: s.operation(enumerate.OpEnumerateRooms),
		},
		{
			Tool: mcp.NewTool("enumerate_zones",
				mcp.WithDescription("List the zones of a home with the rooms each contains"),
				homeArg(),
				nameFilterArg("zones"),
				mcp.WithString(argRoomFilter, mcp.Description("Keep zones containing at least one matching room")),
			),
			Handler: s.operation(enumerate.OpEnumerateZones),
		},
		{
			Tool: mcp.NewTool("enumerate_accessories",
				mcp.WithDescription("List accessories with their services and current characteristic values"),
				homeArg(),
				nameFilterArg("accessories"),
				mcp.WithString(argZoneFilter, mcp.Description("Keep accessories in rooms of matching zones")),
				mcp.WithString(argRoomFilter, mcp.Description("Keep accessories in matching rooms")),
			),
			Handler: s.operation(enumerate.OpEnumerateAccessories),
		},
		{
			Tool: mcp.NewTool("enumerate_service_groups",
				mcp.WithDescription("List service groups and the services they bundle"),
				homeArg(),
				nameFilterArg("service groups"),
			),
			Handler: s.operation(enumerate.OpEnumerateServiceGroups),
		},
		{
			Tool: mcp.NewTool("enumerate_services",
				mcp.WithDescription("List services across every accessory of a home"),
				homeArg(),
				nameFilterArg("services"),
				mcp.WithArray(argTypes,
					mcp.Description("Service type names such as LightBulb or Thermostat; empty allows every type"),
					mcp.WithStringItems(),
				),
			),
			Handler: s.operation(enumerate.OpEnumerateServices),
		},
		{
			Tool: mcp.NewTool("enumerate_action_sets",
				mcp.WithDescription("List scenes and their actions"),
				homeArg(),
				nameFilterArg("action sets"),
			),
			Handler: s.operation(enumerate.OpEnumerateActionSets),
		},
		{
			Tool: mcp.NewTool("enumerate_triggers",
				mcp.WithDescription("List timer and event triggers"),
				homeArg(),
				nameFilterArg("triggers"),
				mcp.WithString(argEnabledFilter,
					mcp.Description("Restrict by enabled flag"),
					mcp.Enum("NoFilter", "EnabledOnly", "DisabledOnly"),
				),
				mcp.WithNumber(argBefore, mcp.Description("Keep triggers last fired before this unix time; 0 leaves it open")),
				mcp.WithNumber(argAfter, mcp.Description("Keep triggers last fired after this unix time; 0 leaves it open")),
			),
			Handler: s.operation(enumerate.OpEnumerateTriggers),
		},
		{
			Tool: mcp.NewTool("graph_status",
				mcp.WithDescription("Describe the installed graph snapshot: its source, load time and entity counts"),
			),
			Handler: s.handleGraphStatus,
		},
	}
}
