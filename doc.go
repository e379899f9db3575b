// Package rawsys is a typed invocation layer over the raw Linux syscall
// interface. It encodes strongly typed arguments into the machine-word
// register slots the kernel calling convention expects, dispatches through
// the architecture's syscall entry, and decodes the packed return word into
// either a typed result or an Errno from the kernel error domain.
//
// The layer is deliberately thin: it holds no state across calls, adds no
// ordering guarantees beyond the kernel's own, and never owns the file
// descriptors or buffers it is handed. Compatibility shims (legacy 32-bit
// resource limits, the getuid32 syscall family, membarrier capability
// probing) are resolved here so callers see one shape per operation.
package rawsys
