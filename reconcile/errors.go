package reconcile

import "errors"

// ErrUnmappedSpecies indicates a gene leaf's species label has no matching
// leaf in the species tree.
var ErrUnmappedSpecies = errors.New("reconcile: gene leaf species has no mapping in species tree")
