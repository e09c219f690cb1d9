package usecases

import "errors"

// ErrMalformedInput means the catalog could not even be parsed.
var ErrMalformedInput = errors.New("malformed catalog input")

// ErrInfeasibleSeed means the constructive seeder could not place every
// required lesson under the catalog's constraints — no amount of
// annealing can fix an infeasible seed, since annealing only ever
// rearranges an already-complete placement.
var ErrInfeasibleSeed = errors.New("catalog has no feasible seed timetable")
