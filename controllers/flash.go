package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/useradmin/models"
)

const flashKey = "flash"

// setFlash stores a message to be shown on the next rendered page
func setFlash(r *http.Request, flashType, message string) {
	sess := session.GetSession(r)
	if sess == nil {
		return
	}
	sess.Set(flashKey, models.FlashMessage{Type: flashType, Message: message})
}

// popFlash returns and clears the pending flash message, if any
func popFlash(r *http.Request) *models.FlashMessage {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}

	flash, ok := sess.Get(flashKey).(models.FlashMessage)
	if !ok {
		return nil
	}
	sess.Delete(flashKey)
	return &flash
}
