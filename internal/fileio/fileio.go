package fileio

import (
	tea "charm.land/bubbletea/v2"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

const timestampFormat = "20060102T150405Z"

type SaveCompleteMsg struct {
	FullPath, SuccessMessage, ErrMessage string
}

// SaveCmd writes lines to fileName, one per line. An empty fileName saves to a timestamped file in the working
// directory
func SaveCmd(fileName string, lines []string) tea.Cmd {
	return func() tea.Msg {
		fullPath, err := save(fileName, lines, time.Now().UTC())
		if err != nil {
			return SaveCompleteMsg{ErrMessage: err.Error()}
		}
		return SaveCompleteMsg{
			FullPath:       fullPath,
			SuccessMessage: fmt.Sprintf("Saved %d lines to %s", len(lines), fullPath),
		}
	}
}

func save(fileName string, lines []string, now time.Time) (string, error) {
	fullPath, err := resolvePath(fileName, now)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return "", err
		}
	}
	return fullPath, nil
}

// resolvePath expands ~, defaults the extension to .txt, and never overwrites: if the file exists, the timestamp is
// appended to its name
func resolvePath(fileName string, now time.Time) (string, error) {
	stamp := now.Format(timestampFormat)
	if fileName == "" {
		fileName = stamp
	}
	if strings.HasPrefix(fileName, "~") {
		currUser, err := user.Current()
		if err != nil {
			return "", err
		}
		fileName = currUser.HomeDir + strings.TrimPrefix(fileName, "~")
	}
	if filepath.Ext(fileName) == "" {
		fileName += ".txt"
	}

	fullPath, err := filepath.Abs(fileName)
	if err != nil {
		return "", err
	}

	exists, err := fileOrDirectoryExists(fullPath)
	if err != nil {
		return "", err
	}
	if exists {
		// /home/test.txt -> /home/test_20210101T120000Z.txt
		ext := filepath.Ext(fullPath)
		fullPath = strings.TrimSuffix(fullPath, ext) + "_" + stamp + ext
	}
	return fullPath, nil
}

func fileOrDirectoryExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
