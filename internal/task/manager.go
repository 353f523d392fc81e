package task

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ErrTaskNotFound はタスクが見つからない場合のエラーです。
var ErrTaskNotFound = errors.New("task not found")

const (
	noTasksMessage     = "No tasks available."
	noCompletedMessage = "No completed tasks yet."
)

// Manager はプロセス内のすべての Task を保持します。
// IDからの引き当ては tasks、表示順 (追加順) は order で管理します。
// nextID は発行済みのどのIDよりも常に大きく、削除後も再利用しません。
type Manager struct {
	tasks  map[int]*Task
	order  []int
	nextID int

	out    io.Writer
	logger zerolog.Logger
}

// NewManager は空の Manager を作成します。out が nil の場合は標準出力に書き込みます。
func NewManager(out io.Writer, logger zerolog.Logger) *Manager {
	if out == nil {
		out = os.Stdout
	}
	return &Manager{
		tasks:  make(map[int]*Task),
		nextID: 1,
		out:    out,
		logger: logger,
	}
}

// AddTask は次のIDで新しいタスクを作成し、末尾に追加します。
func (m *Manager) AddTask(description string, opts ...Option) Task {
	t := NewTask(m.nextID, description, opts...)
	m.nextID++

	m.tasks[t.ID] = t
	m.order = append(m.order, t.ID)

	m.logger.Debug().
		Int("task_id", t.ID).
		Str("priority", t.Priority.String()).
		Msg("added task")
	return *t
}

// ListTasks はすべてのタスクを追加順に1行ずつ出力します。
func (m *Manager) ListTasks() {
	if len(m.order) == 0 {
		fmt.Fprintln(m.out, noTasksMessage)
		return
	}
	for _, t := range m.Tasks() {
		fmt.Fprintln(m.out, FormatTask(t))
	}
}

// CompleteTask は指定IDのタスクを完了にします。
// 見つからない場合はメッセージを出力し、ErrTaskNotFound を返します。
func (m *Manager) CompleteTask(id int) error {
	t, ok := m.tasks[id]
	if !ok {
		fmt.Fprintf(m.out, "Task with ID %d not found.\n", id)
		m.logger.Warn().
			Int("task_id", id).
			Msg("task not found")
		return fmt.Errorf("complete task %d: %w", id, ErrTaskNotFound)
	}

	t.Complete()
	m.logger.Debug().
		Int("task_id", id).
		Msg("completed task")
	return nil
}

// DeleteTask は指定IDのタスクを削除します。存在しない場合は何もしません。
func (m *Manager) DeleteTask(id int) {
	if _, ok := m.tasks[id]; !ok {
		return
	}
	delete(m.tasks, id)

	order := m.order[:0]
	for _, existing := range m.order {
		if existing != id {
			order = append(order, existing)
		}
	}
	m.order = order

	m.logger.Debug().
		Int("task_id", id).
		Msg("deleted task")
}

// FilterTasks は pred を満たすタスクを追加順のまま返します。
func (m *Manager) FilterTasks(pred func(Task) bool) []Task {
	var tasks []Task
	for _, id := range m.order {
		if t := *m.tasks[id]; pred(t) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// GetCompletedTasks は完了済みのタスクを追加順で返します。
func (m *Manager) GetCompletedTasks() []Task {
	return m.FilterTasks(func(t Task) bool { return t.Completed })
}

// CelebrateCompletedTasks は完了済みのタスクを1行ずつ出力します。
func (m *Manager) CelebrateCompletedTasks() {
	completed := m.GetCompletedTasks()
	if len(completed) == 0 {
		fmt.Fprintln(m.out, noCompletedMessage)
		return
	}
	for _, t := range completed {
		fmt.Fprintln(m.out, FormatCelebration(t))
	}
}

// Tasks はすべてのタスクのコピーを追加順で返します。
func (m *Manager) Tasks() []Task {
	tasks := make([]Task, 0, len(m.order))
	for _, id := range m.order {
		tasks = append(tasks, *m.tasks[id])
	}
	return tasks
}

// Task は指定IDのタスクのコピーを返します。
func (m *Manager) Task(id int) (Task, bool) {
	t, ok := m.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

func (m *Manager) Len() int {
	return len(m.order)
}

// FormatTask は ListTasks の1行分を返します。
func FormatTask(t Task) string {
	return fmt.Sprintf("👉 Task: %s, Status: %s, Priority: %s, Due: %s",
		t.Description, t.Status(), t.Priority, t.Due())
}

// FormatCelebration は CelebrateCompletedTasks の1行分を返します。
func FormatCelebration(t Task) string {
	return fmt.Sprintf("🎉 Task \"%s\" (Due: %s) is complete! 🥳", t.Description, t.Due())
}
