// Package registry provides the central glue for the component system.
//
// The Registry maps logical step-kind and data-type names to implementation
// descriptors and resolves descriptors to live instances through an injected
// Loader. Instances are checked against the small fixed set of capability
// interfaces in the task package; a step implementation that does not
// conform is wrapped in an adapter rather than rejected, the escape hatch
// allowing third-party implementations to participate without implementing
// the native capability.
package registry
