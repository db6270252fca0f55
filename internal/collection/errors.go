package collection

import "errors"

var (
	// ErrCollectionExists indicates a collection folder with that name already exists.
	ErrCollectionExists = errors.New("collection: already exists")
	// ErrUnknownCollection indicates a collection folder that does not exist.
	ErrUnknownCollection = errors.New("collection: not found")
	// ErrImageExists indicates the collection already holds an image with that file name.
	ErrImageExists = errors.New("collection: image already exists")
	// ErrUnsupportedImage indicates a file that is not a decodable image type.
	ErrUnsupportedImage = errors.New("collection: unsupported image type")
)
