package models

import "time"

// NoteDateLayout is the timestamp format recorded on note history entries.
// Minute granularity is deliberate: notes are operator actions, not events.
const NoteDateLayout = "2006-01-02 15:04"

// NoteEntry is one immutable entry in an organization's note history.
// Entries are only ever appended; they never mutate or reorder.
type NoteEntry struct {
	// NoteTaker is the name of the operator who recorded the note.
	// May be empty when the operator did not identify themselves.
	NoteTaker string `json:"note_taker"`

	// Note is the note text. Always non-empty: updates with empty note
	// text do not produce history entries.
	Note string `json:"note"`

	// Date is the entry timestamp formatted with [NoteDateLayout].
	Date string `json:"date"`
}

// NewNoteEntry builds a note entry stamped with the given time at minute
// granularity.
func NewNoteEntry(noteTaker, note string, at time.Time) NoteEntry {
	return NoteEntry{
		NoteTaker: noteTaker,
		Note:      note,
		Date:      at.Format(NoteDateLayout),
	}
}
