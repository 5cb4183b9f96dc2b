package contactclient

import "errors"

var (
	ErrBusy   = errors.New("contactclient: submission in progress")
	ErrClosed = errors.New("contactclient: controller closed")
)
