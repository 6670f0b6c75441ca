package writers

// Writer persists named documents and returns a description of where they went.
type Writer interface {
	Write(files map[string]string) (string, error)
}
