package translate

import (
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

// ResolveFormat determines a characteristic's value format. A format in the
// metadata wins; otherwise the type's default applies. Unknown formats and
// types resolve to FormatInvalid.
func ResolveFormat(nativeType string, md *homegraph.Metadata) wire.Format {
	if md != nil && md.Format != "" {
		return Format(md.Format)
	}
	return DefaultFormat(nativeType)
}
