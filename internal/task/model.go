package task

import (
	"errors"
	"fmt"
	"strings"
)

// Priority はタスクの優先度を表します。表示専用で、並び順には影響しません。
type Priority string

const (
	PriorityUrgent       Priority = "🚨 Urgent"
	PriorityNoRush       Priority = "🙂 No rush"
	PriorityTakeYourTime Priority = "🐢 Take your time"
)

// DefaultPriority は優先度を指定しなかった場合の値です。
const DefaultPriority = PriorityNoRush

// ErrUnknownPriority は ParsePriority が解釈できない値を受け取った場合のエラーです。
var ErrUnknownPriority = errors.New("unknown priority")

// IsValid は p が定義済みの3つの優先度のいずれかであるかを返します。
func (p Priority) IsValid() bool {
	switch p {
	case PriorityUrgent, PriorityNoRush, PriorityTakeYourTime:
		return true
	default:
		return false
	}
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority は表示ラベルまたは短いキー (urgent, no-rush, take-your-time) から Priority を返します。
func ParsePriority(s string) (Priority, error) {
	if p := Priority(s); p.IsValid() {
		return p, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urgent":
		return PriorityUrgent, nil
	case "no-rush", "no rush", "":
		return PriorityNoRush, nil
	case "take-your-time", "take your time":
		return PriorityTakeYourTime, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// Task は ToDoタスクを表します。
// 完了状態は false → true の一方向にのみ変化します。
type Task struct {
	ID          int      `json:"id"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	// DueDate: 期限 (空文字列は「期限なし」)
	DueDate string `json:"due_date,omitempty"`
}

// Option は NewTask / Manager.AddTask に渡す任意設定です。
type Option func(*Task)

// WithPriority は優先度を設定します。
func WithPriority(p Priority) Option {
	return func(t *Task) {
		t.Priority = p
	}
}

// WithDueDate は期限を設定します。
func WithDueDate(date string) Option {
	return func(t *Task) {
		t.DueDate = date
	}
}

// NewTask は新しい未完了の Task を作成します。
func NewTask(id int, description string, opts ...Option) *Task {
	t := &Task{
		ID:          id,
		Description: description,
		Priority:    DefaultPriority,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Complete はタスクを完了にします。完了済みのタスクに対しては何もしません。
func (t *Task) Complete() {
	t.Completed = true
}

// HasDueDate は期限が設定されているかを返します。
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// Due は表示用の期限を返します。
func (t Task) Due() string {
	if !t.HasDueDate() {
		return "N/A"
	}
	return t.DueDate
}

// Status は表示用の完了状態を返します。
func (t Task) Status() string {
	if t.Completed {
		return "✅"
	}
	return "⏳"
}
