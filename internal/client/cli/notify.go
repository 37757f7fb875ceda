package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// terminalNotifier prints store notifications as one-line toasts.
type terminalNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func newTerminalNotifier(out io.Writer) *terminalNotifier {
	return &terminalNotifier{out: out}
}

func (n *terminalNotifier) Success(_ context.Context, msg string) {
	n.print("[ok]", msg)
}

func (n *terminalNotifier) Error(_ context.Context, msg string) {
	n.print("[error]", msg)
}

func (n *terminalNotifier) print(tag, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, tag, msg)
}
