package exec

// CommandWrapper runs a template Command with varying arguments.
// It suits tools that are invoked often with different arguments
// (e.g., git, docker): configure the template once, then call Run with the
// arguments of each invocation.
type CommandWrapper struct {
	executor Executor
	base     *Command
}

// NewWrapper creates a CommandWrapper that runs copies of base on executor.
// The executor can be any implementation of Executor, including mocks.
// base is copied, so later changes to it do not affect the wrapper.
func NewWrapper(executor Executor, base *Command) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		base:     base.Clone(),
	}
}

// Command returns a copy of the template with args appended.
// Use it to customise a single invocation before running it with Exec.
func (w *CommandWrapper) Command(args ...string) *Command {
	return w.base.Clone().AddArgs(args...)
}

// Run executes the template with args appended.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	return w.executor.Run(w.Command(args...))
}

// Exec executes cmd on the wrapper's executor.
func (w *CommandWrapper) Exec(cmd *Command) (*Result, error) {
	return w.executor.Run(cmd)
}

// Clone creates a copy of the wrapper with an independent template.
func (w *CommandWrapper) Clone() *CommandWrapper {
	return &CommandWrapper{
		executor: w.executor,
		base:     w.base.Clone(),
	}
}
