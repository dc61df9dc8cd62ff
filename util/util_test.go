package util

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	_ = os.Setenv("TEST_VAR", "TEST_VAL")
	defer os.Unsetenv("TEST_VAR")

	require.Equal(t, "TEST_VAL", GetEnv("TEST_VAR", "OOPS"))
	require.Equal(t, "OOPS", GetEnv("TEST_VAR_MISSING", "OOPS"))
}

func TestGetEnvBlankFallsBack(t *testing.T) {
	_ = os.Setenv("TEST_VAR", "   ")
	defer os.Unsetenv("TEST_VAR")

	require.Equal(t, "OOPS", GetEnv("TEST_VAR", "OOPS"))
}

func TestGetEnvAsInt(t *testing.T) {
	_ = os.Setenv("TEST_VAR", "123")
	defer os.Unsetenv("TEST_VAR")

	require.Equal(t, 123, GetEnvAsInt("TEST_VAR", 321))

	_ = os.Setenv("TEST_VAR", "abc")
	require.Equal(t, 321, GetEnvAsInt("TEST_VAR", 321))
}

func TestGetEnvAsBool(t *testing.T) {
	_ = os.Setenv("TEST_VAR", "true")
	defer os.Unsetenv("TEST_VAR")

	require.True(t, GetEnvAsBool("TEST_VAR", false))

	_ = os.Setenv("TEST_VAR", "nope")
	require.False(t, GetEnvAsBool("TEST_VAR", false))
}

func TestFileExists(t *testing.T) {
	f, err := ioutil.TempFile(os.TempDir(), "util_test")
	require.NoError(t, err)
	defer func() {
		f.Close()
		os.Remove(f.Name())
	}()

	require.True(t, FileExists(f.Name()))
	require.False(t, FileExists(f.Name()+".missing"))
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank("   "))
	require.True(t, IsBlank("\t\n"))
	require.True(t, IsBlank("\u00a0\u0085"))
	require.False(t, IsBlank(" test  "))
	require.False(t, IsBlank("test"))
}

func TestLength(t *testing.T) {
	require.Equal(t, 5, Length("hello"))
	require.Equal(t, 6, Length("привет"))
	require.Equal(t, 0, Length(""))
	require.Equal(t, 2, Length("😀😀"))
}
