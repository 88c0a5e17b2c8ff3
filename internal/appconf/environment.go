package appconf

import "strings"

// Environment identifies the runtime environment the server was started in.
type Environment int

const (
	Test Environment = iota
	Development
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFromString maps an environment name to an Environment, defaulting to
// Development for anything it does not recognize.
func EnvFromString(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}
