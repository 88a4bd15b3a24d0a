package macro

type (
	expansionStack struct {
		maxSize int
		size    int
		head    *node
	}

	node struct {
		frame StackFrame
		next  *node
	}

	// StackFrame is a macro that was being expanded.
	StackFrame struct {
		Name string
	}
)

func newExpansionStack(maxSize int) *expansionStack {
	return &expansionStack{
		maxSize: maxSize,
	}
}

func (s *expansionStack) Push(frame StackFrame) bool {
	if s.maxSize != 0 && s.size+1 > s.maxSize {
		return false
	}

	s.head = &node{
		frame: frame,
		next:  s.head,
	}
	s.size++
	return true
}

func (s *expansionStack) Pop() (StackFrame, bool) {
	if s.head == nil {
		return StackFrame{}, false
	}
	frame := s.head.frame
	s.head = s.head.next
	s.size--
	return frame, true
}

// Slice returns the frames, innermost first.
func (s *expansionStack) Slice() []StackFrame {
	frames := make([]StackFrame, s.size)
	current := s.head
	i := 0
	for current != nil {
		frames[i] = current.frame
		current = current.next
		i++
	}
	return frames
}

func (f StackFrame) String() string {
	return f.Name
}
