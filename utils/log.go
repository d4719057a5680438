package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	defaultLogDir = "./logs"
	logMaxAge     = 7 * 24 * time.Hour
	logRotation   = 24 * time.Hour
)

// Formatter 单行日志: 时间 [级别] 文件:行 函数 消息 字段
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(entry.Time.Format(time.DateTime))
	fmt.Fprintf(&b, " [%s]", strings.ToLower(entry.Level.String()))
	if entry.Caller != nil {
		fmt.Fprintf(&b, " %s:%d %s", filepath.Base(entry.Caller.File), entry.Caller.Line, shortFunc(entry.Caller.Function))
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

func shortFunc(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Logger 创建按天轮转的文件日志
func Logger(dir string, level logrus.Level) (interfaces.Logger, error) {
	writer, err := getWriter(dir)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

// SetupLogger 替换全局 logger.Log
func SetupLogger(dir, level string) error {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l, err := Logger(dir, lv)
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	return nil
}

func getWriter(dir string) (*SafeRotateLogs, error) {
	if dir == "" {
		dir = defaultLogDir
	}
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}

	writer, err := newRotateLogs(logFile)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
	}, nil
}

func newRotateLogs(pattern string) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
}

// SafeRotateLogs 日志文件被删除后重新创建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if current := s.RotateLogs.CurrentFileName(); current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			writer, err := newRotateLogs(s.logPattern)
			if err != nil {
				return 0, fmt.Errorf("failed to recreate log writer: %w", err)
			}
			s.RotateLogs = writer
		}
	}
	return s.RotateLogs.Write(p)
}
