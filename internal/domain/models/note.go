package models

import "time"

// NoteInfo identifies one note folder under the root folder.
type NoteInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CreatedTime time.Time `json:"created_time"`
}

// NoteData is the aggregate view of a note, assembled at read time from
// whichever slot files are present in its folder. A folder with no slot
// files is a valid, empty note.
type NoteData struct {
	Summary      string `json:"summary"`
	Note         string `json:"note"`
	HasSketch    bool   `json:"has_sketch"`
	SketchFileID string `json:"sketch_file_id,omitempty"`
	Sketch       []byte `json:"-"`
}

// SaveNoteRequest carries the fields of a note save. Empty/nil fields are
// not written, so a previously saved slot is never cleared by omission.
type SaveNoteRequest struct {
	Summary string
	Note    string
	Sketch  []byte
}

// IsEmpty reports whether the save would write nothing.
func (r *SaveNoteRequest) IsEmpty() bool {
	return r.Summary == "" && r.Note == "" && len(r.Sketch) == 0
}
