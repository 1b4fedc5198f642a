package exec

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// colorEnv holds the variables set when colors are disabled.
var colorEnv = map[string]string{
	"NO_COLOR":       "1",
	"TERM":           "dumb",
	"CLICOLOR":       "0",
	"CLICOLOR_FORCE": "0",
	"FORCE_COLOR":    "0",
}

// config holds the global settings of a Runner.
// Local settings on a Command override them.
type config struct {
	env           map[string]string
	dir           string
	disableColors bool
}

func newConfig() *config {
	return &config{
		env: make(map[string]string),
	}
}

// effectiveDir returns the command's directory, falling back to the global one.
func (c *config) effectiveDir(cmd *Command) string {
	if cmd.Dir != "" {
		return cmd.Dir
	}
	return c.dir
}

// effectiveDisableColors reports whether either layer disables colors.
func (c *config) effectiveDisableColors(cmd *Command) bool {
	return cmd.DisableColors || c.disableColors
}

// environ builds the child's environment as KEY=VALUE pairs.
//
// Order of application: inherited environment (unless ClearEnv, with PWD
// pointed at the working directory) and global env, minus UnsetEnv, then
// color variables, then the command's Env.
// The result is never nil, so an empty slice really means an empty
// environment.
func (c *config) environ(cmd *Command) []string {
	env := make(map[string]string)
	if !cmd.ClearEnv {
		for _, kv := range os.Environ() {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				continue
			}
			env[k] = v
		}
		if dir := c.effectiveDir(cmd); dir != "" {
			if abs, err := filepath.Abs(dir); err == nil {
				env["PWD"] = abs
			}
		}
	}

	maps.Copy(env, c.env)
	for _, name := range cmd.UnsetEnv {
		delete(env, name)
	}

	if c.effectiveDisableColors(cmd) {
		maps.Copy(env, colorEnv)
	}

	maps.Copy(env, cmd.Env)

	out := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		out = append(out, k+"="+env[k])
	}
	return out
}

// envValue returns the value of key in a KEY=VALUE list.
func envValue(env []string, key string) (string, bool) {
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}
