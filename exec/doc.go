// Package exec runs commands in a subprocess with a few conveniences on top
// of the standard library's os/exec.
//
// A Command describes one invocation: the program, its arguments, working
// directory, environment overrides and a handful of flags controlling how it
// is run. A Runner executes Commands; it implements the Executor interface,
// so code that accepts an Executor can be handed a mock in tests.
//
// # Basic Usage
//
//	result, err := exec.New("echo", "hello", "world").WithCapture().Run()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(result.StdoutString()) // "hello world\n"
//
// New enables Check and PrintCommand. Check turns a non-zero or signal exit
// into an error; PrintCommand writes the shell-quoted command line to stdout
// before the command runs. Both can be turned off:
//
//	result, err := exec.New("grep", "-q", "needle", "haystack.txt").
//		WithCheck(false).
//		WithPrintCommand(false).
//		Run()
//	found := err == nil && result.Success()
//
// # Output Capture
//
// Without Capture the child writes straight to the runner's stdout and
// stderr (os.Stdout and os.Stderr by default) and reads its stdin, which is
// what interactive commands need. With Capture, stdout and stderr are
// collected into Result.Stdout and Result.Stderr:
//
//	result, err := exec.New("sh", "-c", "echo out; echo err >&2").WithCapture().Run()
//	// result.Stdout == []byte("out\n"), result.Stderr == []byte("err\n")
//
// CombineOutput sends stderr to the same pipe as stdout, so the bytes end
// up in Result.Stdout in the order the child wrote them and Result.Stderr
// stays empty:
//
//	result, err := exec.New("make").WithCapture().WithCombinedOutput().Run()
//
// # Configuration
//
// A Runner carries global settings; a Command's own settings override them:
//
//	runner := exec.NewRunner(
//		exec.WithEnv(map[string]string{"CI": "1"}),
//		exec.WithDisableColors(),
//		exec.WithLogger(exec.NewSlogLogger(slog.Default())),
//	)
//
//	cmd := exec.New("go", "test", "./...").
//		WithDir("/src/project").
//		WithEnv(map[string]string{"CGO_ENABLED": "0"}).
//		WithLogCommand()
//	result, err := runner.Run(cmd)
//
// Commands are templates. Running one never changes it, and Clone returns an
// independent copy to derive variants from:
//
//	base := exec.New("docker", "compose").WithCapture()
//	up := base.Clone().AddArgs("up", "-d")
//	down := base.Clone().AddArg("down")
//
// Commands can also be declared in YAML with LoadCommand and LoadCommands.
//
// # Command Wrappers
//
// For tools run often with different arguments, a CommandWrapper appends the
// arguments of each call to a template:
//
//	git := exec.NewWrapper(exec.DefaultRunner(), exec.New("git").WithCapture().WithPrintCommand(false))
//	result, err := git.Run("status", "--short")
//
// # Error Handling
//
// Every error returned by Run is an *ExecError. Its Kind says which phase
// failed:
//
//   - KindSpawn: the program could not be started. No Result exists.
//   - KindWait: waiting for the process failed. No Result exists.
//   - KindExit: Check was set and the process failed. The Result is attached
//     (and also returned by Run) so the captured output can be inspected.
//
//	result, err := exec.New("false").Run()
//	var execErr *exec.ExecError
//	if errors.As(err, &execErr) && execErr.IsExitError() {
//		fmt.Println(execErr.Result.Status) // "exit status: 1"
//	}
//
// With LogOutputOnError the captured output of a checked failure is logged
// at error level before the error is returned. ExecError also implements
// errors.PlatformError from this module's errors package.
//
// The child is never cancelled or timed out: Run returns when the process
// exits.
//
// # Testing
//
// Accept the Executor interface and pass mocks.ExecutorMock in tests:
//
//	func Deploy(executor exec.Executor) error {
//		_, err := executor.Run(exec.New("deploy.sh").WithDir("/app"))
//		return err
//	}
package exec
