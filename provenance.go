package formatvalidate

// ParamSource records which tier of the precedence chain produced a
// parameter value.
type ParamSource int

const (
	SourceUnset         ParamSource = iota
	SourceField                     // data-<rule>-<param> attribute on the field
	SourceCustomMessage             // Config.CustomMessages
	SourceDefault                   // built-in rule message
	SourceConfig                    // Config setting of the same name
)

func (s ParamSource) String() string {
	switch s {
	case SourceField:
		return "field"
	case SourceCustomMessage:
		return "custom"
	case SourceDefault:
		return "default"
	case SourceConfig:
		return "config"
	default:
		return "unset"
	}
}

// KeyProvenance describes where a loaded configuration key came from.
type KeyProvenance struct {
	Key        string // Normalized key (e.g., "custommessages.fvcurrency")
	SourceName string // Source identifier (e.g., "env:FV_INVALIDCLASS")
}
