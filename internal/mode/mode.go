package mode

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ProductionMarker is the NODE_ENV value that selects Production.
const ProductionMarker = "production"

// Mode selects the serving strategy. It is resolved once at startup.
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

func (m Mode) IsProduction() bool {
	return m == Production
}

func (m Mode) String() string {
	return string(m)
}

// Parse maps a NODE_ENV value onto Mode. Anything but an exact
// ProductionMarker match, including the empty string, is Development.
func Parse(nodeEnv string) Mode {
	if nodeEnv == ProductionMarker {
		return Production
	}
	return Development
}

// Resolve reads NODE_ENV from the process environment.
func Resolve() (Mode, error) {
	var env struct {
		NodeEnv string `envconfig:"NODE_ENV"`
	}
	if err := envconfig.Process("", &env); err != nil {
		return Development, fmt.Errorf("process env: %v", err)
	}

	return Parse(env.NodeEnv), nil
}
