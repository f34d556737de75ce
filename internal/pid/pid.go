package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/Rhushya/Kloudmate/internal/errors"
)

const pidFile = "kloudmate-collector.pid"

func path() string {
	return filepath.Join(os.TempDir(), pidFile)
}

// Write records the current process ID. It fails with ErrAlreadyRunning
// when another live collector still holds the file; a stale file from a
// dead process is overwritten.
func Write() error {
	errFactory := errors.New()

	if owner, err := currentOwner(); err != nil {
		return err
	} else if owner != 0 {
		return errFactory.WithData(errors.ErrAlreadyRunning, owner)
	}

	if err := os.WriteFile(path(), []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// currentOwner returns the PID of a live process holding the file, or 0.
func currentOwner() (int, error) {
	errFactory := errors.New()

	raw, err := os.ReadFile(path())
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errFactory.Wrap(errors.ErrInternal, err)
	}

	owner, err := strconv.Atoi(string(raw))
	if err != nil {
		// Unparseable pidfile, treat as stale.
		return 0, nil
	}

	process, err := os.FindProcess(owner)
	if err != nil {
		return 0, nil
	}
	if process.Signal(syscall.Signal(0)) == nil {
		return owner, nil
	}

	return 0, nil
}

// Remove deletes the PID file. A missing file is not an error.
func Remove() error {
	if err := os.Remove(path()); err != nil && !os.IsNotExist(err) {
		return errors.New().Wrap(errors.ErrInternal, err)
	}
	return nil
}
