//go:build nogl
// +build nogl

package opengl

import (
	"fmt"
	"os"

	"github.com/birromer/essaim"
)

// Run returns an error explaining that OpenGL support is disabled.
func Run(s *essaim.Simulation, conf *Config) error {
	return fmt.Errorf("%s was built without OpenGL support\n"+
		"You must specify an output directory ('Output' key in the config file).", os.Args[0])
}
