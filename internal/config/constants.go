package config

// SessionFileNames are the recognized session config file names, in lookup order.
var SessionFileNames = []string{"tyrender.yaml", "tyrender.yml"}

// VerboseEnvVar overrides Session.Verbose when set.
const VerboseEnvVar = "TYRENDER_VERBOSE"

// Literal markers emitted by the renderer
const (
	ErrorMarker      = "[type error]"
	StrTypeName      = "str"
	BoxTypeName      = "Box"
	StaticRegionName = "'static"
	EmptyRegionName  = "'<empty>"
	ElidedRegionName = "'_"
	UnresolvedArgs   = "<..>"
	ClosurePrefix    = "[closure"
)

// AnonRegionName is the display name shared by every unnamed region bound
// in one binder.
const AnonRegionName = "'r"

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
