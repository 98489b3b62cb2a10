package tag

import "errors"

var (
	ErrNoFile         = errors.New("no file or file URL provided")
	ErrDownloadFailed = errors.New("failed to download file")
)
