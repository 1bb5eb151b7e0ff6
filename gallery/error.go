package gallery

import "fmt"

// ErrGalleryClient is returned by the client when a proper error is returned
// by the gallery it interacted with.
type ErrGalleryClient struct {
	StatusCode int
	ErrCode    string
	ErrMessage string
}

func (e ErrGalleryClient) Error() string {
	return fmt.Sprintf(
		"[%d] (%s) %s", e.StatusCode, e.ErrCode, e.ErrMessage)
}
