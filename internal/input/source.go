package input

// Source yields decoded commands. Poll never blocks: it returns false
// when no command is ready.
type Source interface {
	Poll() (Command, bool)
}

// ScriptSource replays a fixed sequence of commands, one per Poll.
type ScriptSource struct {
	commands []Command
}

// NewScriptSource creates a source that yields commands in order.
func NewScriptSource(commands ...Command) *ScriptSource {
	return &ScriptSource{commands: append([]Command(nil), commands...)}
}

// Poll returns the next scripted command.
func (s *ScriptSource) Poll() (Command, bool) {
	if len(s.commands) == 0 {
		return Command{}, false
	}
	cmd := s.commands[0]
	s.commands = s.commands[1:]
	return cmd, true
}

// Push appends commands to the script.
func (s *ScriptSource) Push(commands ...Command) {
	s.commands = append(s.commands, commands...)
}

// Len returns the number of commands left.
func (s *ScriptSource) Len() int {
	return len(s.commands)
}
