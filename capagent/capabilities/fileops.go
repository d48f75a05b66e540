package capabilities

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

// FileAction is the simulated file operation requested by a message.
type FileAction string

const (
	FileActionCreate  FileAction = "create"
	FileActionRead    FileAction = "read"
	FileActionWrite   FileAction = "write"
	FileActionDelete  FileAction = "delete"
	FileActionUnknown FileAction = "unknown"
)

const defaultFileTarget = "the specified file/folder"

var (
	fileActionPatterns = []struct {
		action  FileAction
		pattern *regexp.Regexp
	}{
		{FileActionCreate, regexp.MustCompile(`create|make|new`)},
		{FileActionRead, regexp.MustCompile(`read|open|show|display`)},
		{FileActionWrite, regexp.MustCompile(`write|save|update`)},
		{FileActionDelete, regexp.MustCompile(`delete|remove`)},
	}
	fileTargetPattern = regexp.MustCompile(`(?i)(?:file|folder|directory)\s+["']?([^"'\s]+)["']?`)
)

// FileOps describes file operations without touching the filesystem.
type FileOps struct{}

func NewFileOps() *FileOps { return &FileOps{} }

func (f *FileOps) Name() ports.Label { return ports.LabelFileOps }

func (f *FileOps) Description() string { return "Handle file and folder operations" }

func (f *FileOps) Execute(ctx context.Context, message string, history ports.HistoryView) (string, error) {
	action, target := determineFileAction(message)

	switch action {
	case FileActionCreate:
		return fmt.Sprintf("I can help you create %s. Here's what I would do:\n\n1. Create the file/folder\n2. Set appropriate permissions\n3. Add initial content if specified\n\n*Note: This is a simulation - in a real environment, I would perform the actual file operations.*", target), nil
	case FileActionRead:
		return fmt.Sprintf("I would read the contents of %s and display them to you. The file would be opened and its contents processed for your review.", target), nil
	case FileActionWrite:
		return fmt.Sprintf("I would write the specified content to %s. The file would be created or updated with your new content.", target), nil
	case FileActionDelete:
		return fmt.Sprintf("I would safely delete %s after confirming the operation with you. This ensures no accidental data loss.", target), nil
	default:
		return "I can help you with file operations like creating, reading, writing, or deleting files and folders. What specific file operation would you like me to perform?", nil
	}
}

func determineFileAction(message string) (FileAction, string) {
	lower := strings.ToLower(message)
	for _, candidate := range fileActionPatterns {
		if candidate.pattern.MatchString(lower) {
			return candidate.action, extractFileTarget(message)
		}
	}
	return FileActionUnknown, ""
}

func extractFileTarget(message string) string {
	if match := fileTargetPattern.FindStringSubmatch(message); match != nil {
		return match[1]
	}
	return defaultFileTarget
}

var _ ports.Capability = (*FileOps)(nil)
