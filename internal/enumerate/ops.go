package enumerate

import (
	"fmt"
	"sort"
)

// Operation names accepted by Invoke.
const (
	OpEnumerateHomes         = "EnumerateHomes"
	OpEnumerateRooms         = "EnumerateRooms"
	OpEnumerateZones         = "EnumerateZones"
	OpEnumerateAccessories   = "EnumerateAccessories"
	OpEnumerateServiceGroups = "EnumerateServiceGroups"
	OpEnumerateServices      = "EnumerateServices"
	OpEnumerateActionSets    = "EnumerateActionSets"
	OpEnumerateTriggers      = "EnumerateTriggers"
	OpAddRemoveRoom          = "AddRemoveRoom"
	OpWriteCharacteristic    = "WriteCharacteristic"
	OpExecuteActionSet       = "ExecuteActionSet"
)

// Decoder fills a request value from the transport payload.
type Decoder func(v any) error

type handler func(s *Service, decode Decoder) (any, error)

// invoke adapts a typed operation to the untyped dispatch table.
func invoke[Req, Resp any](op func(*Service, *Req) (*Resp, error)) handler {
	return func(s *Service, decode Decoder) (any, error) {
		req := new(Req)
		if decode != nil {
			if err := decode(req); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
		}
		return op(s, req)
	}
}

var operations = map[string]handler{
	OpEnumerateHomes:         invoke((*Service).EnumerateHomes),
	OpEnumerateRooms:         invoke((*Service).EnumerateRooms),
	OpEnumerateZones:         invoke((*Service).EnumerateZones),
	OpEnumerateAccessories:   invoke((*Service).EnumerateAccessories),
	OpEnumerateServiceGroups: invoke((*Service).EnumerateServiceGroups),
	OpEnumerateServices:      invoke((*Service).EnumerateServices),
	OpEnumerateActionSets:    invoke((*Service).EnumerateActionSets),
	OpEnumerateTriggers:      invoke((*Service).EnumerateTriggers),
	OpAddRemoveRoom:          invoke((*Service).AddRemoveRoom),
	OpWriteCharacteristic:    invoke((*Service).WriteCharacteristic),
	OpExecuteActionSet:       invoke((*Service).ExecuteActionSet),
}

// Invoke runs the named operation. decode is called once with a pointer to
// the operation's request type; a nil decode leaves the request zeroed.
func (s *Service) Invoke(op string, decode Decoder) (any, error) {
	h, ok := operations[op]
	if !ok {
		return nil, fmt.Errorf("%w: operation %q", ErrNotFound, op)
	}
	resp, err := h(s, decode)
	if err != nil {
		s.logger.Debug("operation failed", "operation", op, "error", err)
		return nil, err
	}
	return resp, nil
}

// Operations lists every operation name Invoke accepts, sorted.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
