package models

// IconState tracks whether icon resolution has been attempted for an entry.
// An empty IconPath with state IconResolved means resolution ran and found
// nothing; that is a valid, final outcome and is never retried.
type IconState int

const (
	// IconUnresolved means resolution has not been attempted yet
	IconUnresolved IconState = iota
	// IconResolved means resolution ran; IconPath holds the result (may be empty)
	IconResolved
)

// Entry represents one launchable application parsed from a desktop entry file
type Entry struct {
	Name    string // Display name, always non-empty
	Exec    string // Shell command with field codes stripped, always non-empty
	Comment string // Optional description
	Icon    string // Icon identifier: bare name or absolute path, may be empty
	Source  string // Path of the desktop entry file this came from
	Custom  bool   // Whether this is a user-defined entry rather than a scanned one

	// Icon resolution cache, written at most once per entry lifetime
	IconState IconState
	IconPath  string
}

// SetIconPath memoizes the outcome of icon resolution. The first call wins;
// later calls are ignored so a failed lookup is never retried.
func (e *Entry) SetIconPath(path string) {
	if e.IconState == IconResolved {
		return
	}
	e.IconState = IconResolved
	e.IconPath = path
}

// HasIcon reports whether resolution ran and produced a usable path
func (e *Entry) HasIcon() bool {
	return e.IconState == IconResolved && e.IconPath != ""
}

// DisplayComment returns the comment, or the exec command when no comment is set
func (e *Entry) DisplayComment() string {
	if e.Comment != "" {
		return e.Comment
	}
	return e.Exec
}
