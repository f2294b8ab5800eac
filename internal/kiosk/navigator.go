package kiosk

import "sync"

// Navigator tracks the current screen and a back-stack. All transitions are
// total: there are no error cases, only no-ops.
type Navigator struct {
    mu      sync.Mutex
    current Screen
    history []Screen
}

func NewNavigator() *Navigator {
    return &Navigator{current: ScreenHome}
}

// Navigate switches to target, pushing the previous screen onto the
// back-stack. Navigating to the current screen is a no-op; the return value
// reports whether the transition was effective.
func (n *Navigator) Navigate(target Screen) bool {
    n.mu.Lock()
    defer n.mu.Unlock()
    if target == n.current {
        return false
    }
    n.history = append(n.history, n.current)
    n.current = target
    return true
}

// GoBack pops the last entry off the back-stack. On an empty stack it falls
// back to HOME and leaves the stack empty.
func (n *Navigator) GoBack() Screen {
    n.mu.Lock()
    defer n.mu.Unlock()
    if len(n.history) == 0 {
        n.current = ScreenHome
        return n.current
    }
    n.current = n.history[len(n.history)-1]
    n.history = n.history[:len(n.history)-1]
    return n.current
}

// Reset returns to HOME and clears the back-stack.
func (n *Navigator) Reset() {
    n.mu.Lock()
    defer n.mu.Unlock()
    n.current = ScreenHome
    n.history = nil
}

func (n *Navigator) Current() Screen {
    n.mu.Lock()
    defer n.mu.Unlock()
    return n.current
}

// History returns a copy of the back-stack, oldest first.
func (n *Navigator) History() []Screen {
    n.mu.Lock()
    defer n.mu.Unlock()
    out := make([]Screen, len(n.history))
    copy(out, n.history)
    return out
}

func (n *Navigator) Depth() int {
    n.mu.Lock()
    defer n.mu.Unlock()
    return len(n.history)
}
