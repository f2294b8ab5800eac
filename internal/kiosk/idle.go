package kiosk

import (
    "sync"
    "time"
)

// IdleMonitor fires a callback after a period with no activity. Any call to
// Activity restarts the countdown; after the callback fires the countdown
// restarts so it fires again one full idle period later. Stop releases the
// pending timer; reconfiguring the timeout restarts the countdown cleanly
// instead of compounding timers.
type IdleMonitor struct {
    mu      sync.Mutex
    timeout time.Duration
    onIdle  func()
    timer   *time.Timer
    active  bool
}

func NewIdleMonitor(timeout time.Duration, onIdle func()) *IdleMonitor {
    return &IdleMonitor{timeout: timeout, onIdle: onIdle}
}

// Start begins the countdown. Starting an already started monitor restarts
// the countdown.
func (m *IdleMonitor) Start() {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.active = true
    m.rearmLocked()
}

// Activity records user interaction, restarting the countdown.
func (m *IdleMonitor) Activity() {
    m.mu.Lock()
    defer m.mu.Unlock()
    if !m.active {
        return
    }
    m.rearmLocked()
}

// SetTimeout replaces the idle duration and restarts the countdown if the
// monitor is running.
func (m *IdleMonitor) SetTimeout(timeout time.Duration) {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.timeout = timeout
    if m.active {
        m.rearmLocked()
    }
}

// Stop cancels the pending timer. The monitor can be started again.
func (m *IdleMonitor) Stop() {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.active = false
    if m.timer != nil {
        m.timer.Stop()
        m.timer = nil
    }
}

func (m *IdleMonitor) rearmLocked() {
    if m.timer != nil {
        m.timer.Stop()
    }
    m.timer = time.AfterFunc(m.timeout, m.fire)
}

func (m *IdleMonitor) fire() {
    m.mu.Lock()
    if !m.active {
        m.mu.Unlock()
        return
    }
    onIdle := m.onIdle
    m.rearmLocked()
    m.mu.Unlock()
    if onIdle != nil {
        onIdle()
    }
}
