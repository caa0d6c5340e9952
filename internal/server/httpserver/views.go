package httpserver

import (
	"time"

	"github.com/tbolorunduro/firenotes/internal/model"
)

// NoteView is the JSON shape of a note.
type NoteView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Details     string   `json:"details"`
	Tags        []string `json:"tags"`
	Created     string   `json:"created"`
	IsFavorited bool     `json:"isFavorited"`
}

func toNoteView(n model.Note) NoteView {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteView{
		ID:          n.ID,
		Title:       n.Title,
		Details:     n.Details,
		Tags:        tags,
		Created:     n.Created.Format(time.RFC3339),
		IsFavorited: n.Favorited,
	}
}

func toNoteViews(notes []model.Note) []NoteView {
	views := make([]NoteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, toNoteView(n))
	}
	return views
}
