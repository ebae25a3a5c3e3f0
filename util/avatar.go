package util

import (
	"fmt"

	"github.com/clubhive/clubhive-be/config"
)

// Avatar turns a stored avatar reference into its display URL. Accounts
// without an upload fall back to the stock icon.
func Avatar(ref string) string {
	if ref == "" {
		ref = "icon.jpg"
	}
	return fmt.Sprintf("https://img.clubhive.cc/user/%v?size=%v", ref, config.AVATAR_SIZE)
}

// GroupIcon turns a stored group icon reference into its display URL.
func GroupIcon(ref string) string {
	if ref == "" {
		ref = "icon.jpg"
	}
	return fmt.Sprintf("https://img.clubhive.cc/group/%v", ref)
}
