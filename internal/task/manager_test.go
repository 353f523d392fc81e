package task_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-learning-log/internal/task"
)

func newTestManager(t *testing.T) (*task.Manager, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return task.NewManager(&out, zerolog.Nop()), &out
}

func ids(tasks []task.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestAddTask_Defaults(t *testing.T) {
	m, _ := newTestManager(t)

	created := m.AddTask("Water the plants")

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Water the plants", created.Description)
	assert.False(t, created.Completed)
	assert.Equal(t, task.PriorityNoRush, created.Priority)
	assert.False(t, created.HasDueDate())
	assert.Equal(t, "N/A", created.Due())
}

func TestAddTask_IDsNeverReused(t *testing.T) {
	m, _ := newTestManager(t)

	m.AddTask("a")
	m.AddTask("b")
	m.DeleteTask(2)
	m.AddTask("c")
	m.DeleteTask(1)
	m.DeleteTask(3)
	d := m.AddTask("d")
	m.AddTask("e")

	assert.Equal(t, 4, d.ID, "削除済みのIDは再利用されない")
	assert.Equal(t, []int{4, 5}, ids(m.Tasks()))
}

func TestCompleteTask(t *testing.T) {
	t.Run("marks task complete", func(t *testing.T) {
		m, out := newTestManager(t)
		m.AddTask("Pay parking ticket")

		require.NoError(t, m.CompleteTask(1))

		got, ok := m.Task(1)
		require.True(t, ok)
		assert.True(t, got.Completed)
		assert.Empty(t, out.String())
	})

	t.Run("is idempotent", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.AddTask("Pay parking ticket")
		m.AddTask("Buy anniversary gift")

		require.NoError(t, m.CompleteTask(1))
		once := m.Tasks()
		require.NoError(t, m.CompleteTask(1))

		assert.Equal(t, once, m.Tasks())
	})

	t.Run("reports not found after delete", func(t *testing.T) {
		m, out := newTestManager(t)
		m.AddTask("a")
		m.AddTask("b")
		m.DeleteTask(2)
		before := m.Tasks()

		err := m.CompleteTask(2)

		require.ErrorIs(t, err, task.ErrTaskNotFound)
		assert.Equal(t, "Task with ID 2 not found.\n", out.String())
		assert.Equal(t, before, m.Tasks())
	})
}

func TestDeleteTask_MissingIsNoop(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddTask("a")

	m.DeleteTask(42)

	assert.Equal(t, 1, m.Len())
}

func TestGetCompletedTasks_PreservesOrder(t *testing.T) {
	m, _ := newTestManager(t)
	for _, d := range []string{"a", "b", "c", "d", "e"} {
		m.AddTask(d)
	}
	require.NoError(t, m.CompleteTask(4))
	require.NoError(t, m.CompleteTask(2))
	require.NoError(t, m.CompleteTask(5))
	m.DeleteTask(5)
	m.AddTask("f")
	require.NoError(t, m.CompleteTask(6))

	assert.Equal(t, []int{2, 4, 6}, ids(m.GetCompletedTasks()))
	for _, c := range m.GetCompletedTasks() {
		assert.True(t, c.Completed)
	}
}

func TestGetCompletedTasks_Empty(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddTask("a")

	assert.Empty(t, m.GetCompletedTasks())
}

func TestFilterTasks_ByPriority(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddTask("a", task.WithPriority(task.PriorityUrgent))
	m.AddTask("b")
	m.AddTask("c", task.WithPriority(task.PriorityUrgent))

	urgent := m.FilterTasks(func(t task.Task) bool { return t.Priority == task.PriorityUrgent })

	assert.Equal(t, []int{1, 3}, ids(urgent))
}

func TestTasks_ReturnsCopies(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddTask("a")

	tasks := m.Tasks()
	tasks[0].Completed = true
	tasks[0].Description = "changed"

	got, _ := m.Task(1)
	assert.False(t, got.Completed)
	assert.Equal(t, "a", got.Description)
}

func TestListTasks(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		m, out := newTestManager(t)

		m.ListTasks()

		assert.Equal(t, "No tasks available.\n", out.String())
	})

	t.Run("one line per task in order", func(t *testing.T) {
		m, out := newTestManager(t)
		m.AddTask("Pay parking ticket", task.WithPriority(task.PriorityUrgent), task.WithDueDate("2025-08-06"))
		m.AddTask("Read a book")
		require.NoError(t, m.CompleteTask(2))

		m.ListTasks()

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "👉 Task: Pay parking ticket, Status: ⏳, Priority: 🚨 Urgent, Due: 2025-08-06", lines[0])
		assert.Equal(t, "👉 Task: Read a book, Status: ✅, Priority: 🙂 No rush, Due: N/A", lines[1])
	})
}

func TestCelebrateCompletedTasks_Empty(t *testing.T) {
	m, out := newTestManager(t)
	m.AddTask("a")

	m.CelebrateCompletedTasks()

	assert.Equal(t, "No completed tasks yet.\n", out.String())
}

// デモスクリプトと同じ操作列
func TestManager_DemoScenario(t *testing.T) {
	m, out := newTestManager(t)

	first := m.AddTask("Pay parking ticket", task.WithPriority(task.PriorityUrgent), task.WithDueDate("2025-08-06"))
	second := m.AddTask("Buy anniversary gift", task.WithPriority(task.PriorityTakeYourTime), task.WithDueDate("2025-08-08"))
	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)

	require.NoError(t, m.CompleteTask(1))
	m.DeleteTask(2)

	remaining := m.Tasks()
	require.Len(t, remaining, 1)
	assert.Equal(t, 1, remaining[0].ID)
	assert.True(t, remaining[0].Completed)

	out.Reset()
	m.CelebrateCompletedTasks()
	assert.Equal(t, "🎉 Task \"Pay parking ticket\" (Due: 2025-08-06) is complete! 🥳\n", out.String())
}
