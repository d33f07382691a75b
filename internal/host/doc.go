// Package host provides the scattering-process contract that material
// physics plugins are written against.
//
// A host resolves how to simulate scattering in a material by asking every
// registered [Factory] for a [Priority]:
//
//   - [Unable]: the factory does not handle the request
//   - 1..100: the factory can handle it but defers to the standard factory
//   - above 100: the factory takes precedence over the standard factory
//
// The highest priority wins and its Produce method builds the [Process].
// Factories that add a channel on top of the standard treatment obtain the
// standard process through [ScatterCreator] and merge both with
// [CombineProcs]:
//
//	std, err := creator.GlobalCreateScatter(req, f.Name())
//	if err != nil {
//	    return nil, err
//	}
//	return host.CombineProcs(std, ours), nil
//
// Processes are immutable after construction and may be shared freely
// between goroutines. The only mutable state on the hot path is the [RNG]
// and [Cache] handed in by the caller, one of each per worker.
package host
