package operator

import "sync"

type mockedTap struct {
	pipe   WorkList
	mux    sync.Mutex
	isOpen bool
}

func newMockedTap() *mockedTap {
	return &mockedTap{
		pipe: make(WorkList),
	}
}

func (m *mockedTap) IsOpen() bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.isOpen
}

func (m *mockedTap) Pipe() WorkList {
	return m.pipe
}

func (m *mockedTap) Open() {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.isOpen = true
}

func (m *mockedTap) Push(wUnits ...*WorkUnit) {
	for _, wu := range wUnits {
		m.pipe <- wu
	}
}

func (m *mockedTap) Close() {
	m.mux.Lock()
	defer m.mux.Unlock()
	if m.isOpen {
		m.isOpen = false
		close(m.pipe)
	}
}
