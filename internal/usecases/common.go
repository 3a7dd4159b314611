package usecases

import (
	"errors"

	apierrors "videotube/pkg/errors"

	"gorm.io/gorm"
)

// assertOwner is the single ownership predicate applied by every gated
// mutation. Callers resolve the target first, so a missing record surfaces
// as not-found before any forbidden.
func assertOwner(ownerID, viewerID string) error {
	if ownerID != viewerID {
		return apierrors.Forbidden("only the owner may perform this action")
	}
	return nil
}

// lookupErr maps a repository miss onto the API taxonomy.
func lookupErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierrors.NotFound(what + " not found")
	}
	return apierrors.Internal(err)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
