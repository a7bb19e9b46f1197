package logger

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Dump logs a human readable representation of v at debug level.
func Dump(l logrus.FieldLogger, v any) {
	l.Debugln(litter.Sdump(v))
}

// New returns a new well configured logger writing into the given rotated file.
// Nothing is written to stdout & stderr.
func New(filename string, level logrus.Level) *logrus.Logger {
	return NewWithWriter(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    20, // megabytes
		MaxBackups: 2,
		MaxAge:     10, //days
	}, level)
}

// NewWithWriter returns a new well configured logger writing into w.
func NewWithWriter(w io.Writer, level logrus.Level) *logrus.Logger {
	formatter := new(Formatter)

	log := logrus.New()
	log.SetOutput(io.Discard) // stdout & stderr to /dev/null
	log.SetFormatter(formatter)
	log.SetLevel(level)
	log.Hooks.Add(&writerHook{
		w:         w,
		formatter: formatter,
	})

	return log
}

////////////////////
//                //
// Writer hook    //
//                //
////////////////////

type writerHook struct {
	sync.Mutex
	w         io.Writer
	formatter logrus.Formatter
}

// Fire formats the entry and writes it to the underlying writer.
func (hook *writerHook) Fire(entry *logrus.Entry) error {
	hook.Lock()
	defer hook.Unlock()

	// use our formatter instead of entry.String()
	msg, err := hook.formatter.Format(entry)
	if err != nil {
		log.Println("failed to generate string for entry:", err)
		return err
	}

	_, err = hook.w.Write(msg)
	return err
}

// Levels returns configured log levels.
func (hook *writerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

////////////////////
//                //
// Log formatter  //
//                //
////////////////////

// A Formatter renders entries as `[time] LEVEL: message (fields)`.
type Formatter struct{}

// Format implements Logrus formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	fields := ""
	if len(entry.Data) > 0 {
		fs := []string{}
		for k, v := range entry.Data {
			fs = append(fs, fmt.Sprintf("%s=%v", k, v))
		}
		sort.Strings(fs)
		fields = fmt.Sprintf(" (%s)", strings.Join(fs, ", "))
	}

	data := fmt.Sprintf("[%s] %+5s: %s%s\n",
		entry.Time.Format(time.RFC3339),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
		fields,
	)
	return []byte(data), nil
}
