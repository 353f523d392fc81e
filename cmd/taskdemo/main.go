// taskdemo は決まった手順で task.Manager を動かすデモです。
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"go-learning-log/internal/config"
	"go-learning-log/internal/logger"
	"go-learning-log/internal/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Must(cfg.Env, os.Stderr)
	if err := run(os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to run task demo")
	}
}

// demoTasks は追加するタスクです。優先度は短いキーで書きます。
var demoTasks = []struct {
	description string
	priority    string
	dueDate     string
}{
	{"Pay parking ticket", "urgent", "2025-08-06"},
	{"Buy anniversary gift", "take-your-time", "2025-08-08"},
}

func run(out io.Writer, log zerolog.Logger) error {
	m := task.NewManager(out, log)

	for _, d := range demoTasks {
		p, err := task.ParsePriority(d.priority)
		if err != nil {
			return fmt.Errorf("task %q: %w", d.description, err)
		}
		m.AddTask(d.description, task.WithPriority(p), task.WithDueDate(d.dueDate))
	}

	fmt.Fprintln(out, "\n📜 TASK LIST:")
	m.ListTasks()

	// 見つからない場合のメッセージは Manager が出力済み
	_ = m.CompleteTask(1)
	m.DeleteTask(2)

	fmt.Fprintln(out, "\n✅ COMPLETED TASKS:")
	m.CelebrateCompletedTasks()
	return nil
}
