package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/junioryono/beans"
	"github.com/junioryono/beans/internal/presentation"
)

// execute runs the command tree in-process and captures its output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Demo(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)

	want := "" +
		"Vehicle name from the registry is : Audi 8\n" +
		"Vehicle name from the registry is : Ferrari\n" +
		"Vehicle name from the registry is : BMW\n" +
		"Vehicle name from the registry is : BMW\n" +
		"Hello from vehicle BMW\n"
	require.Equal(t, want, stdout)
}

func TestRoot_Verbose(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "--eager")
	require.NoError(t, err)

	require.Contains(t, stderr, "level=DEBUG")
	require.Contains(t, stderr, `msg="registry built"`)
	require.Contains(t, stderr, `msg="instance created"`)
	require.Contains(t, stderr, `msg="component resolved"`)
}

func TestRoot_QuietByDefault(t *testing.T) {
	_, stderr, err := execute(t)
	require.NoError(t, err)
	require.Empty(t, stderr)
}

func TestRoot_Trace(t *testing.T) {
	stdout, stderr, err := execute(t, "--trace")
	require.NoError(t, err)

	require.Contains(t, stdout, "BMW")
	require.Contains(t, stderr, "beans.lookup.name_and_type")
	require.Contains(t, stderr, "beans.lookup.type")
	require.Contains(t, stderr, "FerrariVehicle")
}

func TestRoot_InvalidLifetime(t *testing.T) {
	_, _, err := execute(t, "--lifetime", "scoped")

	var le beans.LifetimeError
	require.ErrorAs(t, err, &le)
	require.Equal(t, "scoped", le.Value)
}

func TestRoot_EagerRequiresSingleton(t *testing.T) {
	_, _, err := execute(t, "--lifetime", "transient", "--eager")
	require.ErrorContains(t, err, "building registry")
}

func TestRoot_InvalidOutput(t *testing.T) {
	_, _, err := execute(t, "list", "-o", "xml")
	require.ErrorContains(t, err, "unsupported output format")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "vehicle1")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		stdout, _, err := execute(t, "list")
		require.NoError(t, err)
		require.Contains(t, stdout, "NAME")
		require.Contains(t, stdout, "BMWVehicle      *vehicles.Vehicle  *\n")
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "list", "--output", "json")
		require.NoError(t, err)

		var dtos []presentation.DefinitionDTO
		require.NoError(t, json.Unmarshal([]byte(stdout), &dtos))
		require.Len(t, dtos, 3)
		require.Equal(t, "vehicle1", dtos[0].Name)
		require.True(t, dtos[2].Primary)
	})

	t.Run("yaml from environment", func(t *testing.T) {
		t.Setenv("BEANS_OUTPUT", "yaml")

		stdout, _, err := execute(t, "list")
		require.NoError(t, err)

		var dtos []presentation.DefinitionDTO
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &dtos))
		require.Len(t, dtos, 3)
		require.Equal(t, "FerrariVehicle", dtos[1].Name)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("BEANS_OUTPUT", "yaml")

		stdout, _, err := execute(t, "list", "-o", "json")
		require.NoError(t, err)
		require.True(t, json.Valid([]byte(stdout)))
	})
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "by name",
			args: []string{"get", "--name", "vehicle1"},
			want: "vehicle1 (*vehicles.Vehicle): &{Name:Audi 8}\n",
		},
		{
			name: "by type selects primary",
			args: []string{"get", "--type", "Vehicle"},
			want: "BMWVehicle (*vehicles.Vehicle): &{Name:BMW}\n",
		},
		{
			name: "by name and type",
			args: []string{"get", "-n", "FerrariVehicle", "-t", "Vehicle"},
			want: "FerrariVehicle (*vehicles.Vehicle): &{Name:Ferrari}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, stdout)
		})
	}
}

func TestGet_JSON(t *testing.T) {
	stdout, _, err := execute(t, "get", "--type", "Vehicle", "-o", "json")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"BMWVehicle","type":"*vehicles.Vehicle","value":{"name":"BMW"}}`, stdout)
}

func TestGet_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
		msg    string
	}{
		{
			name:   "unknown name",
			args:   []string{"get", "--name", "vehicle2"},
			target: beans.ErrNotFound,
		},
		{
			name:   "no definition of type",
			args:   []string{"get", "--type", "Engine"},
			target: beans.ErrNotFound,
		},
		{
			name:   "type mismatch",
			args:   []string{"get", "--name", "vehicle1", "--type", "Engine"},
			target: beans.ErrTypeMismatch,
		},
		{
			name:   "no selector",
			args:   []string{"get"},
			target: errNoSelector,
		},
		{
			name: "unknown type",
			args: []string{"get", "--type", "Truck"},
			msg:  `unknown type "Truck"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			require.Empty(t, stdout)
			require.Contains(t, stderr, "Error:")

			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
			if tt.msg != "" {
				require.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestGet_TraceRecordsErrors(t *testing.T) {
	_, stderr, err := execute(t, "get", "--type", "Engine", "--trace")
	require.ErrorIs(t, err, beans.ErrNotFound)
	require.Contains(t, stderr, "beans.lookup.type")
	require.Contains(t, stderr, "component not found")
}

func TestGet_TransientLifetime(t *testing.T) {
	t.Setenv("BEANS_LIFETIME", "transient")

	stdout, _, err := execute(t, "get", "--name", "BMWVehicle")
	require.NoError(t, err)
	require.Contains(t, stdout, "BMW")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "Singleton", cfg.Lifetime)
	require.Equal(t, "text", cfg.Output)
	require.False(t, cfg.Eager)
	require.False(t, cfg.Trace)
}
