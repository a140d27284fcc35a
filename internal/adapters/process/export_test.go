// export_test.go exposes internal state for white-box testing.
package process

// Watching reports whether a watcher is registered for pid.
func (t *Table) Watching(pid int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.watchers[pid]
	return ok
}
