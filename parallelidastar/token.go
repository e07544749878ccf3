package parallelidastar

// token carries a single colour around the ring.
type token struct {
	colour tokColour
}

// ring wires one inbound channel per worker. Worker k hands its token to
// worker k-1, wrapping from 0 to w-1, matching the Dijkstra-Safra protocol:
// worker 0 decides termination, every other worker just relays.
type ring struct {
	inbox []chan token
}

func newRing(w int) *ring {
	r := &ring{inbox: make([]chan token, w)}
	for i := range r.inbox {
		r.inbox[i] = make(chan token, 1)
	}
	return r
}

func (r *ring) successor(id int) int {
	if id == 0 {
		return len(r.inbox) - 1
	}
	return id - 1
}

// start seeds worker 0 with the initial BLACK token.
func (r *ring) start() {
	r.inbox[0] <- token{colour: black}
}

// tryReceive attempts a non-blocking receive of this worker's token.
func (r *ring) tryReceive(id int) (token, bool) {
	select {
	case t := <-r.inbox[id]:
		return t, true
	default:
		return token{}, false
	}
}

func (r *ring) send(id int, t token) {
	r.inbox[r.successor(id)] <- t
}

// handleToken implements one worker's reaction to holding the token.
// Worker 0 declares termination when it sees a WHITE token back having
// stayed WHITE itself; every other worker darkens the token if it has
// gone BLACK itself since last holding it, then always resets to WHITE.
func handleToken[N comparable](p *processor[N], r *ring, t token, quit *atomicFlag) {
	if p.id == 0 {
		if t.colour == white && tokColour(p.colour.Load()) == white {
			quit.set()
			return
		}
		p.colour.Store(int32(white))
		r.send(0, token{colour: white})
		return
	}

	out := t.colour
	if tokColour(p.colour.Load()) == black {
		out = black
	}
	p.colour.Store(int32(white))
	r.send(p.id, token{colour: out})
}
