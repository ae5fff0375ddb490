package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook buffers entries and writes them from a single goroutine so slow file I/O never blocks a request.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters starts the writer goroutine. bufferSize <= 0 means 1000.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}
	hook.wg.Add(1)
	go hook.processEntries()
	return hook
}

func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire never blocks: entries are dropped when the buffer is full.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if _, skip := entry.Data[skipField]; skip {
		return nil
	}

	if closed {
		data, err := format(entry)
		if err != nil {
			return err
		}
		for _, w := range h.writers {
			_, _ = w.Write(data)
		}
		return nil
	}

	cp := *entry
	cp.Buffer = nil
	cp.Data = make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		cp.Data[k] = v
	}

	select {
	case h.entries <- &cp:
	default:
	}
	return nil
}

func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// the logger cannot log its own failure
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] %v\n", r)
					debug.PrintStack()
				}
			}()

			data, err := format(entry)
			if err != nil {
				return
			}
			for _, w := range h.writers {
				_, _ = w.Write(data)
			}
		}()
	}
}

// Close drains the buffer.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}

func format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	return []byte(line), err
}

// ModuleFilterHook drops entries whose "module" field is not in the allow list.
// It runs before AsyncHook and blanks the message so the async writer skips it.
type ModuleFilterHook struct {
	allowed map[string]bool
}

func NewModuleFilterHook(modules string) *ModuleFilterHook {
	allowed := make(map[string]bool)
	for _, m := range strings.Split(modules, ",") {
		if m = strings.TrimSpace(m); m != "" {
			allowed[m] = true
		}
	}
	if allowed["*"] {
		allowed = map[string]bool{}
	}
	return &ModuleFilterHook{allowed: allowed}
}

func (h *ModuleFilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *ModuleFilterHook) Fire(entry *logrus.Entry) error {
	if !h.Allows(entry) {
		entry.Data[skipField] = true
	}
	return nil
}

// Allows reports whether the entry passes the module filter. Errors always pass.
func (h *ModuleFilterHook) Allows(entry *logrus.Entry) bool {
	if len(h.allowed) == 0 || entry.Level <= logrus.ErrorLevel {
		return true
	}
	module, ok := entry.Data["module"].(string)
	if !ok {
		return true
	}
	return h.allowed[module]
}

const skipField = "_skip"
