package entities

// ExitInterrupted is returned instead of an exit code when waiting for the client is cancelled
const ExitInterrupted = -1

// Invocation describes one launch of the client script
type Invocation struct {
	Script     string
	WorkingDir string
	Args       []string
}

// Argv returns the full command line: the script followed by its arguments
func (i Invocation) Argv() []string {
	argv := make([]string, 0, len(i.Args)+1)
	argv = append(argv, i.Script)
	return append(argv, i.Args...)
}
