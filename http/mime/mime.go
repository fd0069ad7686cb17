package mime

type MIME = string

const (
	Plain       MIME = "text/plain; charset=utf-8"
	HTML        MIME = "text/html"
	JSON        MIME = "application/json"
	OctetStream MIME = "application/octet-stream"
)
