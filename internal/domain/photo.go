package domain

import "time"

// Kind of proof-of-collection photo. At most one of each kind per collection.
type PhotoType string

const (
	PhotoBefore PhotoType = "before"
	PhotoAfter  PhotoType = "after"
)

// ValidPhotoType reports whether t is a known photo kind.
func ValidPhotoType(t PhotoType) bool {
	return t == PhotoBefore || t == PhotoAfter
}

// CollectionPhoto records a stored proof-of-collection image.
type CollectionPhoto struct {
	PhotoID      int
	CollectionID int
	PhotoURL     string
	PhotoType    PhotoType
	CreatedAt    time.Time
}
