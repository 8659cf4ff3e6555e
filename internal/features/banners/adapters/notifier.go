package adapters

import (
	"fmt"
	"io"
	"sync"
)

// WriterNotifier prints alerts, one per line, and remembers them.
type WriterNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	alerts []string
}

// NewWriterNotifier creates a notifier writing to out.
func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

// Alert implements ports.Notifier.
func (n *WriterNotifier) Alert(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.alerts = append(n.alerts, message)
	fmt.Fprintln(n.out, message)
}

// Alerts returns every message shown so far.
func (n *WriterNotifier) Alerts() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.alerts...)
}
