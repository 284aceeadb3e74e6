package app

// defaultStepKinds and defaultDataTypes are the two built-in name to
// implementation-descriptor listings seeding the component registry at
// initialization. Build files extend them with taskdef and typedef blocks.
var defaultStepKinds = map[string]string{
	"echo":     "EchoStep",
	"fail":     "FailStep",
	"property": "PropertyStep",
	"shell":    "ShellStep",
	"sleep":    "SleepStep",
	"tstamp":   "TstampStep",
}

var defaultDataTypes = map[string]string{
	"equals": "EqualsCondition",
	"os":     "OsCondition",
	"path":   "PathType",
}
