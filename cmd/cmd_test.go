package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

func findCommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func TestRootCommand_RegistersActions(t *testing.T) {
	for _, name := range []string{"move", "click", "dclick", "drag", "scroll"} {
		findCommand(t, name)
	}
}

func TestMoveCommand_Flags(t *testing.T) {
	move := findCommand(t, "move")
	assert.NotNil(t, move.Flags().Lookup("duration"))
	assert.NotNil(t, move.Flags().Lookup("linear"))
}

func TestButtonFlags(t *testing.T) {
	for _, name := range []string{"click", "dclick", "drag"} {
		c := findCommand(t, name)
		flag := c.Flags().Lookup("button")
		require.NotNil(t, flag, "%s must expose --button", name)
		assert.Equal(t, "left", flag.DefValue)
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("120", "-45")
	require.NoError(t, err)
	assert.Equal(t, schemas.Point{X: 120, Y: -45}, p)

	_, err = parsePoint("abc", "0")
	assert.Error(t, err)
	_, err = parsePoint("0", "1.5")
	assert.Error(t, err)
}

func TestPointArgs(t *testing.T) {
	assert.NoError(t, pointArgs(nil, nil))
	assert.NoError(t, pointArgs(nil, []string{"10", "20"}))
	assert.Error(t, pointArgs(nil, []string{"10"}))
	assert.Error(t, pointArgs(nil, []string{"10", "20", "30"}))
}

func TestOptionalPoint(t *testing.T) {
	p, err := optionalPoint(nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = optionalPoint([]string{"5", "6"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, schemas.Point{X: 5, Y: 6}, *p)
}
