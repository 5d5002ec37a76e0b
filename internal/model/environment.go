package model

// Environment names the deployment stage read from environment.name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Valid reports whether e is a known deployment stage.
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentDevelopment, EnvironmentProduction:
		return true
	}
	return false
}
