package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"go-learning-log/internal/config"
)

var setupGlobals sync.Once

// setup は zerolog のグローバル設定を一度だけ行います。
func setup() {
	setupGlobals.Do(func() {
		zerolog.TimestampFieldName = "timestamp"
		// レベルは各ロガーの Level で決める
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})
}

// New は env に応じたレベルと出力形式の zerolog.Logger を作成します。
// w が nil の場合は標準エラー出力に書き込みます。
func New(env string, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	var level zerolog.Level
	switch env {
	case config.EnvDev:
		level = zerolog.DebugLevel
	case config.EnvProd:
		level = zerolog.InfoLevel
	case config.EnvLocal:
		level = zerolog.TraceLevel

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = w
		w = consoleWriter
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %s", config.ErrUnknownEnv, env)
	}
	setup()

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger(), nil
}

// Must は New と同じですが、失敗した場合は panic します。
func Must(env string, w io.Writer) zerolog.Logger {
	l, err := New(env, w)
	if err != nil {
		panic(err)
	}
	return l
}
