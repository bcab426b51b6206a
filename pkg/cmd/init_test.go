package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitCommand_RegistersSubcommands(t *testing.T) {
	cmd := InitCommand(BuildInfo{Version: "test", AppName: "htmlidx"})

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"serve", "health", "build", "query"}, names)
}
