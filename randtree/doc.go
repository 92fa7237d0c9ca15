// Package randtree generates random unrooted gene trees for testing.
//
// Both constructors take an explicit *rand.Rand so callers get
// deterministic, reproducible trees for a fixed seed; neither ever reaches
// for the global math/rand functions.
package randtree
