package state

import (
	"fmt"
	"path/filepath"
	"slices"
)

// RowView is one visible row of the listing pane.
type RowView struct {
	Name       string
	IsDir      bool
	IsSymlink  bool
	IsHidden   bool
	IsMarked   bool
	IsSelected bool
}

// ViewModel is everything the renderer needs for one frame.
type ViewModel struct {
	Path        string
	Mode        Mode
	Rows        []RowView
	Offset      int
	Total       int
	FilterQuery string

	// PreviewPath is the path the preview lines were produced from.
	PreviewPath  string
	PreviewIsDir bool
	Preview      []string

	Status      string
	StatusError bool
	// Prompt replaces the status line while a modal input is active.
	Prompt      string
	MarkCount   int
	HelpVisible bool
}

// BuildView derives a ViewModel from s. previewRows bounds the preview.
func BuildView(s *Session, previewer Previewer, previewRows int) ViewModel {
	vm := ViewModel{
		Path:        s.Nav.CurrentPath,
		Mode:        s.Mode,
		Offset:      s.Nav.ScrollOffset,
		Total:       len(s.Listing),
		FilterQuery: s.ActiveQuery(),
		Status:      s.Status,
		StatusError: s.StatusError,
		Prompt:      promptText(s),
		MarkCount:   s.Marks.Len(),
		HelpVisible: s.HelpVisible,
	}

	end := min(len(s.Listing), s.Nav.ScrollOffset+s.Nav.rows())
	for i := s.Nav.ScrollOffset; i < end; i++ {
		entry := s.Listing[i]
		vm.Rows = append(vm.Rows, RowView{
			Name:       entry.Name,
			IsDir:      entry.IsDir,
			IsSymlink:  entry.IsSymlink,
			IsHidden:   entry.IsHidden(),
			IsMarked:   s.Marks.Contains(entry.Path(s.Nav.CurrentPath)),
			IsSelected: i == s.Nav.SelectedIndex,
		})
	}

	// An empty listing previews the directory itself so the pane shows the
	// empty-directory sentinel.
	vm.PreviewPath = s.Nav.CurrentPath
	vm.PreviewIsDir = true
	if entry := s.Selected(); entry != nil {
		vm.PreviewPath = entry.Path(s.Nav.CurrentPath)
		vm.PreviewIsDir = entry.IsDir
	}
	vm.Preview = slices.Collect(previewer.Lines(vm.PreviewPath, previewRows))
	return vm
}

func promptText(s *Session) string {
	switch s.Mode {
	case ModeFilter:
		return "Filter: " + s.Filter.Query
	case ModePrompt:
		switch s.Prompt.Kind {
		case PromptRename:
			return fmt.Sprintf("Rename '%s' to: %s", filepath.Base(s.Prompt.Target), s.Prompt.Input)
		case PromptNewDirectory:
			return "New directory: " + s.Prompt.Input
		default:
			return "New file: " + s.Prompt.Input
		}
	case ModeConfirm:
		return fmt.Sprintf("Delete '%s'? (y/n): ", filepath.Base(s.Confirm.Current()))
	}
	return ""
}
