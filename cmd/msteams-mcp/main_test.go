package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mattermost/msteams-mcp-server/server/tools"
)

func TestToolsCommand(t *testing.T) {
	for _, tc := range []struct {
		Name   string
		Format string
		Decode func(data []byte, v any) error
	}{
		{Name: "yaml", Format: "yaml", Decode: yaml.Unmarshal},
		{Name: "json", Format: "json", Decode: json.Unmarshal},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetArgs([]string{"tools", "--format", tc.Format})
			require.NoError(t, cmd.Execute())

			var descriptors []tools.Descriptor
			require.NoError(t, tc.Decode(out.Bytes(), &descriptors))
			require.Len(t, descriptors, len(tools.Descriptors()))
			assert.Equal(t, tools.SendMessage, descriptors[3].Name)
		})
	}
}

func TestToolsCommandUnknownFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"tools", "--format", "toml"})
	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "dev\n", out.String())
}
