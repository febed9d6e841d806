package domain

import "go.trai.ch/zerr"

// Command is one operator-level operation of the installer.
type Command int

const (
	// CommandInstall builds and then installs with elevated privileges.
	CommandInstall Command = iota
	// CommandBuild configures and compiles only.
	CommandBuild
	// CommandClean removes the build output directory.
	CommandClean
	// CommandUninstall removes the installed artifacts.
	CommandUninstall
	// CommandTest builds if needed and runs the test suite.
	CommandTest
)

// DefaultCommand is the command run when the operator names none.
const DefaultCommand = CommandInstall

var commandNames = map[Command]string{
	CommandInstall:   "install",
	CommandBuild:     "build",
	CommandClean:     "clean",
	CommandUninstall: "uninstall",
	CommandTest:      "test",
}

// CommandNames lists the accepted command names in help order.
func CommandNames() []string {
	return []string{"install", "build", "clean", "uninstall", "test"}
}

// ParseCommand maps operator text to a Command. Names match exactly; empty text
// selects DefaultCommand.
func ParseCommand(s string) (Command, error) {
	if s == "" {
		return DefaultCommand, nil
	}
	for cmd, name := range commandNames {
		if name == s {
			return cmd, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownCommand, "invalid command"), "command", s)
}

// String returns the command name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// RequiresToolchain reports whether the command needs a working compiler toolchain,
// and therefore passes through the dependency check first.
func (c Command) RequiresToolchain() bool {
	switch c {
	case CommandBuild, CommandInstall, CommandTest:
		return true
	case CommandClean, CommandUninstall:
		return false
	default:
		return false
	}
}

// State is a position in the orchestrator's state machine.
type State int

const (
	StateIdle State = iota
	StateChecking
	StateConfiguring
	StateBuilding
	StateInstalling
	StateTesting
	StateUninstalling
	StateCleaning
	StateDone
)

var stateNames = [...]string{
	StateIdle:         "idle",
	StateChecking:     "checking",
	StateConfiguring:  "configuring",
	StateBuilding:     "building",
	StateInstalling:   "installing",
	StateTesting:      "testing",
	StateUninstalling: "uninstalling",
	StateCleaning:     "cleaning",
	StateDone:         "done",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
