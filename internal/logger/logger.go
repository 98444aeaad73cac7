package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 项目统一日志接口，参数以 key/value 形式成对传入
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
	Err(err error, msg string, kv ...any)
	With(kv ...any) Logger
}

// Options 日志初始化选项
type Options struct {
	Level   string
	Writers []string // console / file
	File    string
	MaxSize int // MB
	Backups int
}

type zlog struct {
	zl zerolog.Logger
}

// New 根据选项创建基于 zerolog 的日志实例
func New(opts Options) Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	var writers []io.Writer
	for _, w := range opts.Writers {
		switch strings.ToLower(w) {
		case "console":
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
		case "file":
			writers = append(writers, newFileWriter(opts))
		}
	}
	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	return &zlog{zl: zl}
}

// NewWithWriter 使用指定输出创建日志实例，输出为 JSON 行
func NewWithWriter(w io.Writer, level string) Logger {
	lv, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lv = zerolog.DebugLevel
	}
	return &zlog{zl: zerolog.New(w).Level(lv).With().Timestamp().Logger()}
}

// NewNop 创建丢弃所有输出的日志实例
func NewNop() Logger {
	return &zlog{zl: zerolog.Nop()}
}

func newFileWriter(opts Options) io.Writer {
	file := opts.File
	if file == "" {
		file = filepath.Join("logs", "schemebridge.log")
	}
	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = 50
	}
	backups := opts.Backups
	if backups <= 0 {
		backups = 5
	}
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: backups,
		Compress:   true,
	}
}

func (l *zlog) Debug(msg string, kv ...any) { l.write(l.zl.Debug(), msg, kv) }
func (l *zlog) Info(msg string, kv ...any)  { l.write(l.zl.Info(), msg, kv) }
func (l *zlog) Warn(msg string, kv ...any)  { l.write(l.zl.Warn(), msg, kv) }
func (l *zlog) Error(msg string, kv ...any) { l.write(l.zl.Error(), msg, kv) }

func (l *zlog) Err(err error, msg string, kv ...any) {
	l.write(l.zl.Error().Err(err), msg, kv)
}

// With 返回附带固定字段的子日志
func (l *zlog) With(kv ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i < len(kv); i += 2 {
		key, val := pair(kv, i)
		ctx = ctx.Interface(key, val)
	}
	return &zlog{zl: ctx.Logger()}
}

func (l *zlog) write(ev *zerolog.Event, msg string, kv []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(kv); i += 2 {
		key, val := pair(kv, i)
		switch v := val.(type) {
		case error:
			ev = ev.AnErr(key, v)
		case string:
			ev = ev.Str(key, v)
		case time.Duration:
			ev = ev.Dur(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	ev.Msg(msg)
}

func pair(kv []any, i int) (string, any) {
	key, ok := kv[i].(string)
	if !ok {
		key = fmt.Sprint(kv[i])
	}
	if i+1 >= len(kv) {
		return key, "(MISSING)"
	}
	return key, kv[i+1]
}
