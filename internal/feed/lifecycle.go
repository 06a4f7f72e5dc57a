package feed

import "sync"

// State는 원격 조회/등록의 진행 상태입니다.
type State int

const (
	StateIdle    State = iota // 0: 아직 요청 전
	StateLoading              // 1: 조회 또는 등록 진행 중
	StateSuccess              // 2: 마지막 요청 성공
	StateFailure              // 3: 마지막 요청 실패 (Error에 사용자 메시지)
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	}
	return "unknown"
}

// Snapshot은 렌더러가 소비하는 (목록, 로딩 여부, 에러 메시지) 묶음입니다.
type Snapshot[T any] struct {
	State   State
	Items   []T
	Loading bool
	Error   string
}

// Lifecycle은 Idle → Loading → (Success | Failure) 상태 기계입니다.
// 인스턴스마다 자신의 목록과 상태를 단독으로 소유합니다.
type Lifecycle[T any] struct {
	mu        sync.Mutex
	state     State
	items     []T
	errMsg    string
	observers []func(Snapshot[T])
}

// Observe는 상태가 바뀔 때마다 동기적으로 호출될 함수를 등록합니다.
func (l *Lifecycle[T]) Observe(fn func(Snapshot[T])) {
	l.mu.Lock()
	l.observers = append(l.observers, fn)
	l.mu.Unlock()
}

// Begin은 Loading 상태로 들어갑니다. 기존 목록은 그대로 둡니다.
func (l *Lifecycle[T]) Begin() {
	l.transition(func() {
		l.state = StateLoading
		l.errMsg = ""
	})
}

// Succeed는 목록 전체를 교체하고 Success 상태로 들어갑니다.
func (l *Lifecycle[T]) Succeed(items []T) {
	if items == nil {
		items = []T{}
	}
	l.transition(func() {
		l.state = StateSuccess
		l.items = items
		l.errMsg = ""
	})
}

// Fail은 Failure 상태로 들어갑니다. 기존 목록은 건드리지 않습니다.
func (l *Lifecycle[T]) Fail(msg string) {
	l.transition(func() {
		l.state = StateFailure
		l.errMsg = msg
	})
}

// Snapshot은 현재 상태의 사본을 반환합니다.
func (l *Lifecycle[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Lifecycle[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[T]{
		State:   l.state,
		Items:   items,
		Loading: l.state == StateLoading,
		Error:   l.errMsg,
	}
}

func (l *Lifecycle[T]) transition(apply func()) {
	l.mu.Lock()
	apply()
	snap := l.snapshotLocked()
	observers := append([]func(Snapshot[T]){}, l.observers...)
	l.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}
