package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Discard is a logger that throws everything away
var Discard Logger = New(io.Discard, FatalLevel+1)

type standard struct {
	level Level
	out   *log.Logger
	exit  func(int)
}

// New creates a logger which writes the messages at or above the specified level to out
func New(out io.Writer, level Level) Logger {
	return &standard{
		level: level,
		out:   log.New(out, "", log.LstdFlags),
		exit:  os.Exit,
	}
}

func (s *standard) write(level Level, msg string) {
	if level < s.level {
		return
	}
	s.out.Output(3, level.String()+" "+msg)
}

func (s *standard) Error(args ...interface{}) { s.write(ErrorLevel, fmt.Sprint(args...)) }
func (s *standard) Errorf(format string, args ...interface{}) {
	s.write(ErrorLevel, fmt.Sprintf(format, args...))
}
func (s *standard) Errorln(args ...interface{}) { s.write(ErrorLevel, fmt.Sprintln(args...)) }

func (s *standard) Debug(args ...interface{}) { s.write(DebugLevel, fmt.Sprint(args...)) }
func (s *standard) Debugf(format string, args ...interface{}) {
	s.write(DebugLevel, fmt.Sprintf(format, args...))
}
func (s *standard) Debugln(args ...interface{}) { s.write(DebugLevel, fmt.Sprintln(args...)) }

func (s *standard) Warning(args ...interface{}) { s.write(WarningLevel, fmt.Sprint(args...)) }
func (s *standard) Warningf(format string, args ...interface{}) {
	s.write(WarningLevel, fmt.Sprintf(format, args...))
}
func (s *standard) Warningln(args ...interface{}) { s.write(WarningLevel, fmt.Sprintln(args...)) }

func (s *standard) Info(args ...interface{}) { s.write(InfoLevel, fmt.Sprint(args...)) }
func (s *standard) Infof(format string, args ...interface{}) {
	s.write(InfoLevel, fmt.Sprintf(format, args...))
}
func (s *standard) Infoln(args ...interface{}) { s.write(InfoLevel, fmt.Sprintln(args...)) }

// The fatal methods always exit the process with status 1, whatever the level.
func (s *standard) Fatal(args ...interface{}) {
	s.write(FatalLevel, fmt.Sprint(args...))
	s.exit(1)
}
func (s *standard) Fatalf(format string, args ...interface{}) {
	s.write(FatalLevel, fmt.Sprintf(format, args...))
	s.exit(1)
}
func (s *standard) Fatalln(args ...interface{}) {
	s.write(FatalLevel, fmt.Sprintln(args...))
	s.exit(1)
}
