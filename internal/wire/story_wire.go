package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStory(r chi.Router, storyHandler *adaptor.StoryHandler) {
	r.Route("/stories", func(r chi.Router) {
		r.Post("/", storyHandler.Create)
		r.Get("/", storyHandler.List)
		r.Get("/all-stories", storyHandler.ListAll)
		r.Get("/{id}", storyHandler.GetByID)
		r.Delete("/{id}", storyHandler.Delete)
		r.Patch("/{id}", storyHandler.Update)
		r.Patch("/{id}/approve", storyHandler.Approve)
		r.Patch("/add-image/{id}", storyHandler.AddImage)
		r.Patch("/remove-image/{id}", storyHandler.RemoveImage)
	})
}
