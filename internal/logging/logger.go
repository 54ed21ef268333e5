package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает уровень из конфигурации без учёта регистра.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger — логгер с порогом уровня поверх стандартного log.
type Logger struct {
	out   *log.Logger
	level LogLevel
}

// Глобальный экземпляр логгера; до Init пишет INFO и выше в stderr.
var globalLogger = &Logger{out: log.New(os.Stderr, "", log.LstdFlags), level: INFO}

// Init переключает глобальный логгер на writer с заданным порогом.
func Init(level LogLevel, w io.Writer) {
	globalLogger = &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

// Level возвращает текущий порог.
func Level() LogLevel {
	return globalLogger.level
}

func Trace(format string, args ...interface{}) {
	logMessage(TRACE, format, args...)
}

func Debug(format string, args ...interface{}) {
	logMessage(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	logMessage(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	logMessage(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	logMessage(ERROR, format, args...)
}

// logMessage внутренняя функция для логирования
func logMessage(level LogLevel, format string, args ...interface{}) {
	l := globalLogger
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
}
