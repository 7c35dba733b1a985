package nfa

// thread is a suspended simulation path. Threads live in a slab owned by
// PikeVMState and are linked by index, so they can be recycled without
// allocating during a search.
type thread struct {
	pc   InstID
	next int32
}

const noThread int32 = -1

// threadList is a singly linked run list ordered by descending priority.
type threadList struct {
	head, tail int32
}

func emptyList() threadList {
	return threadList{head: noThread, tail: noThread}
}

func (l *threadList) empty() bool {
	return l.head == noThread
}

// PikeVMState holds the mutable scratch space of one search: the generation
// stamps, the thread slab with its free list, and the capture slots of every
// thread. A state may be reused for any number of sequential searches on the
// program it was made for, but not by two searches at once.
type PikeVMState struct {
	stamps  []uint32
	gen     uint32
	threads []thread
	slots   []int
	stride  int
	free    int32
	skipper Skipper
}

// SetSkipper installs sk for subsequent searches with this state. The VM
// consults it whenever no thread is alive. A nil sk disables skipping.
func (s *PikeVMState) SetSkipper(sk Skipper) {
	s.skipper = sk
}

// NewState allocates search state sized for the VM's program.
func (vm *PikeVM) NewState() *PikeVMState {
	n := vm.prog.maxThreads
	return &PikeVMState{
		stamps:  make([]uint32, len(vm.prog.insts)),
		threads: make([]thread, n),
		slots:   make([]int, n*vm.stride),
		stride:  vm.stride,
		free:    noThread,
	}
}

// reset puts every thread back on the free list.
func (s *PikeVMState) reset() {
	for i := range s.threads {
		s.threads[i].next = int32(i + 1)
	}
	if n := len(s.threads); n > 0 {
		s.threads[n-1].next = noThread
		s.free = 0
	} else {
		s.free = noThread
	}
}

// nextGen starts a new simulation step. Stamps are never cleared between
// steps or searches; only a wrap of the counter forces a sweep.
func (s *PikeVMState) nextGen() uint32 {
	s.gen++
	if s.gen == 0 {
		clear(s.stamps)
		s.gen = 1
	}
	return s.gen
}

func (s *PikeVMState) alloc() int32 {
	t := s.free
	if t == noThread {
		panic("nfa: thread pool exhausted")
	}
	s.free = s.threads[t].next
	s.threads[t].next = noThread
	return t
}

func (s *PikeVMState) release(t int32) {
	s.threads[t].next = s.free
	s.free = t
}

func (s *PikeVMState) caps(t int32) []int {
	off := int(t) * s.stride
	return s.slots[off : off+s.stride]
}

func (s *PikeVMState) pushBack(l *threadList, t int32) {
	s.threads[t].next = noThread
	if l.tail == noThread {
		l.head = t
	} else {
		s.threads[l.tail].next = t
	}
	l.tail = t
}

func (s *PikeVMState) pushFront(l *threadList, t int32) {
	s.threads[t].next = l.head
	l.head = t
	if l.tail == noThread {
		l.tail = t
	}
}

func (s *PikeVMState) popFront(l *threadList) int32 {
	t := l.head
	l.head = s.threads[t].next
	if l.head == noThread {
		l.tail = noThread
	}
	s.threads[t].next = noThread
	return t
}

// releaseAll returns every thread of l to the free list.
func (s *PikeVMState) releaseAll(l *threadList) {
	for l.head != noThread {
		s.release(s.popFront(l))
	}
}
