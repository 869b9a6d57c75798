package match

// Task 一次性延迟任务
type Task struct {
	name      string
	remaining float64
	fn        func()
	cancelled bool
	fired     bool
}

// Name 任务名称
func (t *Task) Name() string { return t.name }

// Cancel 取消任务；已触发的任务取消无效果
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Pending 任务是否仍在等待触发
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Fired 任务是否已经触发
func (t *Task) Fired() bool {
	return t != nil && t.fired
}

// Scheduler 延迟任务调度器
//
// 由模拟循环在同一线程上调用 Update 推进，回调也在 Update 内执行，
// 因此回调与物理更新不会并发，无需加锁。
type Scheduler struct {
	tasks  []*Task
	firing []*Task // 本次 Update 正在触发的批次
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make([]*Task, 0)}
}

// After 在 delay 秒（模拟时间）后执行 fn
// delay <= 0 的任务在下一次 Update 时执行
func (s *Scheduler) After(name string, delay float64, fn func()) *Task {
	task := &Task{name: name, remaining: delay, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Update 推进时间并按加入顺序触发到期任务
func (s *Scheduler) Update(dt float64) {
	if len(s.tasks) == 0 {
		return
	}

	// 回调中可能加入新任务，先取出当前批次
	due := make([]*Task, 0)
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.cancelled {
			continue
		}
		task.remaining -= dt
		if task.remaining <= 0 {
			due = append(due, task)
		} else {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
	s.firing = due
	defer func() { s.firing = nil }()

	for _, task := range due {
		if task.cancelled {
			continue
		}
		task.fired = true
		if task.fn != nil {
			task.fn()
		}
	}
}

// CancelAll 取消全部等待中的任务
func (s *Scheduler) CancelAll() {
	for _, task := range s.tasks {
		task.cancelled = true
	}
	for _, task := range s.firing {
		if !task.fired {
			task.cancelled = true
		}
	}
	s.tasks = s.tasks[:0]
}

// Len 等待中的任务数量
func (s *Scheduler) Len() int {
	n := 0
	for _, task := range s.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}
