package rawsys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetpidStable(t *testing.T) {
	first := Getpid()
	second := Getpid()
	require.NotZero(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, os.Getpid(), int(first))
}

func TestGetppid(t *testing.T) {
	assert.Equal(t, os.Getppid(), int(Getppid()))
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, os.Getuid(), int(Getuid()))
	assert.Equal(t, os.Geteuid(), int(Geteuid()))
	assert.Equal(t, os.Getgid(), int(Getgid()))
	assert.Equal(t, os.Getegid(), int(Getegid()))
}

func TestGetcwd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	buf := make([]byte, 4096)
	n, err := Getcwd(buf)
	require.NoError(t, err)
	require.Greater(t, n, 1)
	// The count includes the terminating NUL.
	assert.Equal(t, wd, string(buf[:n-1]))
	assert.Zero(t, buf[n-1])
}

func TestGetcwdShortBuffer(t *testing.T) {
	_, err := Getcwd(make([]byte, 1))
	assert.ErrorIs(t, err, ERANGE)
}

func TestChdirRoundTrip(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	defer func() { require.NoError(t, os.Chdir(orig)) }()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, Chdir(dir))
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, dir, wd)

	assert.ErrorIs(t, Chdir(filepath.Join(dir, "missing")), ENOENT)
	assert.ErrorIs(t, Chdir("bad\x00path"), EINVAL)
}

func TestFchdir(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	defer func() { require.NoError(t, os.Chdir(orig)) }()

	f, err := os.Open(orig)
	require.NoError(t, err)
	defer f.Close()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, Chdir(dir))

	require.NoError(t, Fchdir(Borrow(int(f.Fd()))))
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, orig, wd)
}

func TestUname(t *testing.T) {
	u := Uname()
	assert.Equal(t, "Linux", u.Sysname())
	assert.NotEmpty(t, u.Release())
	assert.NotEmpty(t, u.Machine())
	hn, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, hn, u.Nodename())
}

func TestSchedYield(t *testing.T) {
	assert.NotPanics(t, SchedYield)
}
