package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"codeberg.org/mutker/zonectl/internal/errors"
	"codeberg.org/mutker/zonectl/internal/logger"
)

const pidFile = "zonectl.pid"

func path() string {
	return filepath.Join(os.TempDir(), pidFile)
}

// Write claims the single-instance lock. Two monitors would fight over
// the I2C bus and GPIO lines, so a live pidfile is fatal. A stale or
// unreadable one left behind by a crash is replaced.
func Write() error {
	errFactory := errors.New()

	if old, err := read(); err == nil {
		if processAlive(old) {
			return errFactory.WithData(errors.ErrAlreadyRunning, old)
		}
		logger.Debug().Int("pid", old).Msg("Replacing stale pidfile")
	}

	if err := os.WriteFile(path(), []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove releases the lock. A missing pidfile is not an error.
func Remove() error {
	errFactory := errors.New()

	if _, err := os.Stat(path()); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(path()); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

func read() (int, error) {
	bytes, err := os.ReadFile(path())
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(string(bytes))
}

func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
