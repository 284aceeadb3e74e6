package app

import (
	"github.com/vk/anvilgo/internal/registry"
	"github.com/vk/anvilgo/modules/condition"
	"github.com/vk/anvilgo/modules/echo"
	"github.com/vk/anvilgo/modules/fail"
	"github.com/vk/anvilgo/modules/path"
	"github.com/vk/anvilgo/modules/property"
	"github.com/vk/anvilgo/modules/shell"
	"github.com/vk/anvilgo/modules/sleep"
	"github.com/vk/anvilgo/modules/tstamp"
)

// CoreModules returns the definitive list of modules compiled into the
// anvilgo binary. Tests extend it with their own recording modules.
func CoreModules() []registry.Module {
	out := make([]registry.Module, len(coreModules))
	copy(out, coreModules)
	return out
}

var coreModules = []registry.Module{
	&condition.Module{},
	&echo.Module{},
	&fail.Module{},
	&path.Module{},
	&property.Module{},
	&shell.Module{},
	&sleep.Module{},
	&tstamp.Module{},
}
