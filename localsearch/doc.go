// Package localsearch implements steepest descent over a heuristic
// gradient, with a bounded budget of side moves across plateaus.
//
// At each step the engine evaluates the heuristic over every outgoing
// neighbour of the current node. Neighbours whose heuristic does not exceed
// the current node's are candidates; if any candidate is strictly better,
// only the strictly-better set survives and side moves are discarded. A
// uniformly random candidate becomes the new current node. Moves that do
// not strictly improve the heuristic consume one unit of the side-move
// budget; exhausting it ends the search. Running out of candidates ends it
// too. The returned node is a local optimum or a budget-exhausted plateau
// point, never guaranteed global.
package localsearch
