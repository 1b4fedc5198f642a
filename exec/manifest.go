package exec

import (
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/cmdrun/errors"
)

// UnmarshalYAML decodes a command from YAML. Fields that are absent keep
// the defaults of New, so check and print_command are on unless disabled.
func (c *Command) UnmarshalYAML(node *yaml.Node) error {
	type plain Command
	decoded := plain(*New(""))
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*c = Command(decoded)
	return nil
}

// LoadCommand decodes a single command manifest:
//
//	program: go
//	args: [test, ./...]
//	capture: true
//	env:
//	  CGO_ENABLED: "0"
func LoadCommand(data []byte) (*Command, error) {
	var cmd Command
	if err := yaml.Unmarshal(data, &cmd); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode command manifest")
	}
	if err := validate(&cmd); err != nil {
		return nil, err
	}
	return &cmd, nil
}

// LoadCommands decodes a manifest mapping names to commands:
//
//	build:
//	  program: go
//	  args: [build, ./...]
//	lint:
//	  program: golangci-lint
//	  args: [run]
//	  check: false
func LoadCommands(data []byte) (map[string]*Command, error) {
	var cmds map[string]*Command
	if err := yaml.Unmarshal(data, &cmds); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode command manifest")
	}

	for name, cmd := range cmds {
		if cmd == nil {
			return nil, errors.WithContext(
				errors.New(errors.CodeInvalidConfig, "command has no definition"),
				"command", name,
			)
		}
		if err := validate(cmd); err != nil {
			return nil, errors.WithContext(err, "command", name)
		}
	}

	if cmds == nil {
		cmds = make(map[string]*Command)
	}
	return cmds, nil
}

func validate(cmd *Command) error {
	if cmd.Program == "" {
		return errors.New(errors.CodeInvalidInput, "program must not be empty")
	}
	return nil
}
