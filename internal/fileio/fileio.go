package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

type SaveCompleteMsg struct {
	FullPath, SuccessMessage, ErrMessage string
}

// GetSaveCommand returns a command that writes content to fileName, one line
// per element, resolving name collisions with a timestamp suffix.
func GetSaveCommand(fileName string, content []string) tea.Cmd {
	return func() tea.Msg {
		fullPath, err := saveToFile(fileName, content)
		if err != nil {
			return SaveCompleteMsg{ErrMessage: err.Error()}
		}
		return SaveCompleteMsg{
			FullPath:       fullPath,
			SuccessMessage: fmt.Sprintf("Saved to %s", fullPath),
		}
	}
}

func saveToFile(fileName string, content []string) (string, error) {
	now := time.Now().UTC().Format("20060102T150405Z")
	if fileName == "" {
		fileName = now
	}
	if filepath.Ext(fileName) == "" {
		fileName += ".txt"
	}

	fullPath, err := filepath.Abs(fileName)
	if err != nil {
		return "", err
	}

	// never clobber an existing file
	if _, statErr := os.Stat(fullPath); statErr == nil {
		extension := filepath.Ext(fullPath)
		fullPath = strings.TrimSuffix(fullPath, extension) + "_" + now + extension
	} else if !os.IsNotExist(statErr) {
		return "", statErr
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	for _, line := range content {
		if _, writeErr := f.WriteString(line + "\n"); writeErr != nil {
			return "", writeErr
		}
	}
	return fullPath, nil
}
