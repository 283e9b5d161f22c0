package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/securecookie"
)

// Flash categories map onto notice styling in the templates.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Flash is one human-readable notice shown on the next page render.
type Flash struct {
	Category string
	Message  string
}

const flashCookieName = "bookclub_flash"

// flashCodec signs the flash cookie so notices cannot be forged client-side.
var flashCodec *securecookie.SecureCookie

// initFlash configures the cookie signer from the app secret.
func initFlash(secret string) {
	flashCodec = securecookie.New([]byte(secret), nil)
}

// addFlash appends a notice to the flash cookie.
// POST: The notice is delivered on the next page render for this browser
func addFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	flashes := readFlashes(r)
	flashes = append(flashes, Flash{Category: category, Message: message})

	encoded, err := flashCodec.Encode(flashCookieName, flashes)
	if err != nil {
		slog.Error("flash_encode_failed", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns pending notices and clears the cookie.
// POST: Subsequent renders see no flashes until addFlash is called again
func popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := readFlashes(r)
	if len(flashes) == 0 {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return flashes
}

// readFlashes decodes the flash cookie; a missing or tampered cookie reads as empty.
func readFlashes(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := flashCodec.Decode(flashCookieName, cookie.Value, &flashes); err != nil {
		return nil
	}
	return flashes
}
