package segment

// frame is one decision point: the word taken and the text left after it,
// tagged with the path depth at which it was produced.
type frame struct {
	word  string
	rest  string
	depth int
}

// frameStack is a LIFO of frames.
type frameStack struct {
	items []frame
}

func (s *frameStack) push(f frame) {
	s.items = append(s.items, f)
}

// pop removes and returns the top frame. The caller checks len first.
func (s *frameStack) pop() frame {
	last := len(s.items) - 1
	f := s.items[last]
	s.items = s.items[:last]

	return f
}

func (s *frameStack) len() int {
	return len(s.items)
}

// truncate drops frames until at most n remain.
func (s *frameStack) truncate(n int) {
	if n < len(s.items) {
		s.items = s.items[:n]
	}
}

// words returns the frame words bottom to top.
func (s *frameStack) words() []string {
	out := make([]string, len(s.items))
	for i := range s.items {
		out[i] = s.items[i].word
	}

	return out
}
