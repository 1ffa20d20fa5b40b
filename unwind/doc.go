// Package unwind provides the register-location map threaded through a
// stack walk in a managed runtime.
//
// # Overview
//
// Compiled frames keep live values in registers instead of spilling them
// on every call. When the runtime walks a stack (GC root scanning,
// exception delivery, deoptimization), each frame-to-sender transition
// must record where callee-saved register values ended up: a known stack
// slot of some ancestor frame, or nowhere the walker can see. Map is that
// record. One Map accompanies one ordered callee-to-caller walk; the
// transition code writes newly discovered locations into it and both the
// walker and oop-visiting logic read them back.
//
// # Shape
//
// The Map is a fixed-capacity side table: one location slot per register
// plus a packed validity bit-vector. A register with its bit set resolves
// to the recorded slot; every other register is derived on the fly by the
// platform Resolver from the current frame pointer. The map performs no
// heap allocation after construction and owns none of the memory it
// points into.
//
// # Walk Protocol
//
// Construct a Map at the start of a walk (bound to a thread, to a
// suspended continuation, or cloned from a peer to branch exploration),
// pass the same instance to every frame transition, and call Clear when
// the walk reaches an entry frame so no register information flows past
// that boundary. Reusing an instance for a second, independent walk
// requires an explicit Clear or a new construction.
//
// # Continuation Stacks
//
// When the walk descends into a heap-resident stack segment (see the
// chunk package), the map attaches the segment's handle. From that point
// every Address it hands out is a byte offset into the segment, not a
// machine address; callers check InCont before treating results as
// absolute, and re-validate against the handle's relocation generation
// across suspension points.
//
// # Thread Safety
//
// A Map belongs to exactly one in-progress walk. It carries no internal
// synchronization; parallel or out-of-order frame visits through a shared
// map are unsupported.
//
// # Debug Builds
//
// Building with the unwinddebug tag arms an assertion layer: writes to a
// non-updatable map and double updates of the same frame panic instead of
// being rejected quietly, and the async/skip-missing instrumentation
// flags become real. Without the tag the layer compiles away.
//
// # Related Packages
//
//   - github.com/joshuapare/unwindkit/unwind/chunk: relocatable stack segments and their root-registered handles
//   - github.com/joshuapare/unwindkit/unwind/arch: concrete register spaces and frame-pointer resolvers
package unwind
