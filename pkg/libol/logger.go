package libol

import (
	"container/list"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

const (
	DEBUG = 10
	INFO  = 20
	WARN  = 30
	ERROR = 40
	FATAL = 99
)

type Message struct {
	Level   string `json:"level"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

var levels = map[int]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

type logger struct {
	Level    int
	FileName string
	FileLog  *log.Logger
	Out      *log.Logger
	Lock     sync.Mutex
	Recent   *list.List
	Size     int
}

func (l *logger) Write(level int, format string, v ...interface{}) {
	str, ok := levels[level]
	if !ok {
		str = "NULL"
	}
	if level >= l.Level {
		l.Out.Printf(fmt.Sprintf("[%s] %s", str, format), v...)
	}
	if level >= WARN {
		l.Save(str, format, v...)
	}
}

func (l *logger) Save(level string, format string, v ...interface{}) {
	m := fmt.Sprintf(format, v...)
	l.Lock.Lock()
	defer l.Lock.Unlock()
	if l.FileLog != nil {
		l.FileLog.Println("[" + level + "] " + m)
	}
	if l.Recent.Len() >= l.Size {
		if e := l.Recent.Front(); e != nil {
			l.Recent.Remove(e)
		}
	}
	ele := &Message{
		Level:   level,
		Date:    time.Now().Format("2006/01/02 15:04:05"),
		Message: m,
	}
	l.Recent.PushBack(ele)
}

// List yields the saved warnings and errors newest first and finishes
// with nil.
func (l *logger) List() <-chan *Message {
	c := make(chan *Message, 128)
	go func() {
		l.Lock.Lock()
		defer l.Lock.Unlock()
		for ele := l.Recent.Back(); ele != nil; ele = ele.Prev() {
			c <- ele.Value.(*Message)
		}
		c <- nil
	}()
	return c
}

var Logger = logger{
	Level:  INFO,
	Out:    log.New(os.Stderr, "", log.LstdFlags),
	Recent: list.New(),
	Size:   1024,
}

func Debug(format string, v ...interface{}) {
	Logger.Write(DEBUG, format, v...)
}

func Info(format string, v ...interface{}) {
	Logger.Write(INFO, format, v...)
}

func Warn(format string, v ...interface{}) {
	Logger.Write(WARN, format, v...)
}

func Error(format string, v ...interface{}) {
	Logger.Write(ERROR, format, v...)
}

func Fatal(format string, v ...interface{}) {
	Logger.Write(FATAL, format, v...)
}

// SetLogger sets the level and, when file is not empty, mirrors saved
// messages into it.
func SetLogger(file string, level int) {
	Logger.Level = level
	if file == "" || Logger.FileName == file {
		return
	}
	Logger.FileName = file
	if fp, err := OpenWrite(file); err == nil {
		Logger.FileLog = log.New(fp, "", log.LstdFlags)
	} else {
		Warn("Logger.SetLogger: %s", err)
	}
}

func SetLevel(level int) {
	Logger.Level = level
}

func Catch(name string) {
	if err := recover(); err != nil {
		Fatal("%s [PANIC] >>> %s <<<", name, err)
		Fatal("%s [STACK] >>> %s <<<", name, debug.Stack())
	}
}

type SubLogger struct {
	Prefix string
}

func NewSubLogger(prefix string) *SubLogger {
	return &SubLogger{Prefix: prefix}
}

func (s *SubLogger) Fmt(format string) string {
	return s.Prefix + "|" + format
}

func (s *SubLogger) Debug(format string, v ...interface{}) {
	Logger.Write(DEBUG, s.Fmt(format), v...)
}

func (s *SubLogger) Info(format string, v ...interface{}) {
	Logger.Write(INFO, s.Fmt(format), v...)
}

func (s *SubLogger) Warn(format string, v ...interface{}) {
	Logger.Write(WARN, s.Fmt(format), v...)
}

func (s *SubLogger) Error(format string, v ...interface{}) {
	Logger.Write(ERROR, s.Fmt(format), v...)
}
