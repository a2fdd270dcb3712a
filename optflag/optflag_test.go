package optflag

import (
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/optional.go"
)

func TestUnsetFlagStaysEmpty(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	port := Int(fs, "port", "listener port")
	require.Nil(t, fs.Parse(nil))
	require.False(t, port.IsPresent())
}

func TestSetFlag(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	port := Int(fs, "port", "listener port")
	host := String(fs, "host", "listener host")
	require.Nil(t, fs.Parse([]string{"--port", "8080"}))
	require.Equal(t, 8080, port.GetOrDefault(-1))
	require.False(t, host.IsPresent())
}

func TestBoolFlagWithoutArgument(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	verbose := Bool(fs, "verbose", "enable verbose output")
	require.Nil(t, fs.Parse([]string{"--verbose"}))
	require.True(t, verbose.GetOrDefault(false))
}

func TestDurationFlag(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	timeout := Duration(fs, "timeout", "request timeout")
	require.Nil(t, fs.Parse([]string{"--timeout", "1m30s"}))
	require.Equal(t, 90*time.Second, timeout.GetOrDefault(0))
}

func TestParseError(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	port := Int(fs, "port", "listener port")
	require.NotNil(t, fs.Parse([]string{"--port", "eighty"}))
	require.False(t, port.IsPresent())
}

func TestValue(t *testing.T) {
	t.Parallel()

	var target optional.Optional[int]
	v := New(&target, strconv.Atoi, "int")
	require.Equal(t, "int", v.Type())
	require.Equal(t, "", v.String())
	require.Nil(t, v.Set("42"))
	require.Equal(t, 42, target.GetOrDefault(-1))
	require.Equal(t, "42", v.String())
}

func TestValueNilParse(t *testing.T) {
	t.Parallel()

	var target optional.Optional[int]
	v := New(&target, nil, "int")
	require.ErrorIs(t, v.Set("42"), ErrNilParse)
	require.False(t, target.IsPresent())
}

func TestValueNilTarget(t *testing.T) {
	t.Parallel()

	v := New(nil, strconv.Atoi, "int")
	require.Nil(t, v.Set("42"))
	require.Equal(t, 42, v.Optional().GetOrDefault(-1))
}
