package exec

import "maps"

// Command describes one invocation of a program.
//
// The fields are exported so a Command can be written as a plain struct
// literal; the builder methods exist for chaining. A Command is a template:
// running it never modifies it, and the same Command can be run any number of
// times. Use Clone to derive a variant without touching the original.
type Command struct {
	// Program is the program to run. A bare name is looked up in the PATH the
	// child will run with.
	Program string `yaml:"program"`

	// Args are passed to the program as-is. They are never interpreted by a shell.
	Args []string `yaml:"args"`

	// Dir is the working directory of the child. If empty, the runner's
	// directory (or the caller's) is used.
	Dir string `yaml:"dir"`

	// Env holds environment variables set in the child, applied over the
	// inherited environment.
	Env map[string]string `yaml:"env"`

	// UnsetEnv names variables removed from the inherited environment.
	// Variables in Env are still set.
	UnsetEnv []string `yaml:"unset_env"`

	// ClearEnv starts the child with an empty environment instead of
	// inheriting the caller's.
	ClearEnv bool `yaml:"clear_env"`

	// DisableColors sets NO_COLOR, TERM=dumb and friends in the child.
	DisableColors bool `yaml:"disable_colors"`

	// Capture collects stdout and stderr into the Result instead of letting
	// the child write to the runner's streams.
	Capture bool `yaml:"capture"`

	// CombineOutput sends stderr to the same pipe as stdout. Only meaningful
	// with Capture; the combined bytes end up in Result.Stdout.
	CombineOutput bool `yaml:"combine_output"`

	// Check makes a non-zero or signal exit an error. Defaults to true in New.
	Check bool `yaml:"check"`

	// LogCommand logs the command line at info level before running it.
	LogCommand bool `yaml:"log_command"`

	// PrintCommand writes the command line to the runner's stdout before
	// running it. Defaults to true in New.
	PrintCommand bool `yaml:"print_command"`

	// LogOutputOnError logs the captured output at error level when a
	// checked command fails. The report goes only to the runner's Logger,
	// so it has no effect with the default NopLogger.
	LogOutputOnError bool `yaml:"log_output_on_error"`
}

// New creates a Command for program with the given arguments.
// Check and PrintCommand are enabled; every other option is off.
func New(program string, args ...string) *Command {
	return &Command{
		Program:      program,
		Args:         append([]string(nil), args...),
		Check:        true,
		PrintCommand: true,
	}
}

// AddArg appends a single argument.
func (c *Command) AddArg(arg string) *Command {
	c.Args = append(c.Args, arg)
	return c
}

// AddArgPair appends two arguments, typically a flag and its value.
func (c *Command) AddArgPair(arg1, arg2 string) *Command {
	c.Args = append(c.Args, arg1, arg2)
	return c
}

// AddArgs appends multiple arguments.
func (c *Command) AddArgs(args ...string) *Command {
	c.Args = append(c.Args, args...)
	return c
}

// WithDir sets the working directory.
func (c *Command) WithDir(dir string) *Command {
	c.Dir = dir
	return c
}

// WithEnv merges env into the command's environment overrides.
func (c *Command) WithEnv(env map[string]string) *Command {
	if c.Env == nil {
		c.Env = make(map[string]string, len(env))
	}
	maps.Copy(c.Env, env)
	return c
}

// WithUnsetEnv removes the named variables from the inherited environment.
func (c *Command) WithUnsetEnv(names ...string) *Command {
	c.UnsetEnv = append(c.UnsetEnv, names...)
	return c
}

// WithClearEnv starts the child with an empty environment.
func (c *Command) WithClearEnv() *Command {
	c.ClearEnv = true
	return c
}

// WithDisableColors disables color output in the child.
func (c *Command) WithDisableColors() *Command {
	c.DisableColors = true
	return c
}

// WithCapture enables output capture.
func (c *Command) WithCapture() *Command {
	c.Capture = true
	return c
}

// WithCombinedOutput merges stderr into stdout. It does not enable capture
// on its own.
func (c *Command) WithCombinedOutput() *Command {
	c.CombineOutput = true
	return c
}

// WithCheck sets whether a non-success exit is returned as an error.
func (c *Command) WithCheck(check bool) *Command {
	c.Check = check
	return c
}

// WithLogCommand logs the command line before running it.
func (c *Command) WithLogCommand() *Command {
	c.LogCommand = true
	return c
}

// WithPrintCommand sets whether the command line is printed before running it.
func (c *Command) WithPrintCommand(enabled bool) *Command {
	c.PrintCommand = enabled
	return c
}

// WithLogOutputOnError logs captured output when a checked command fails.
func (c *Command) WithLogOutputOnError() *Command {
	c.LogOutputOnError = true
	return c
}

// Clone returns a deep copy of the command. Changes to the copy's
// arguments or environment never reach the original.
func (c *Command) Clone() *Command {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Args = append([]string(nil), c.Args...)
	clone.UnsetEnv = append([]string(nil), c.UnsetEnv...)
	clone.Env = maps.Clone(c.Env)
	return &clone
}

// CommandLine formats the command as a shell-quoted line for display.
// It is never used to run the command.
func (c *Command) CommandLine() string {
	return FormatCommandLine(c.Program, c.Args)
}

// String implements fmt.Stringer.
func (c *Command) String() string {
	return c.CommandLine()
}

// Run executes the command with the default runner.
func (c *Command) Run() (*Result, error) {
	return DefaultRunner().Run(c)
}
