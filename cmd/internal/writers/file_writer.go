package writers

import (
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/strutil"
	"github.com/google/uuid"
	"os"
	"path/filepath"
)

type FileWriter struct {
	dest string
}

func NewFileWriterToTempDir() *FileWriter {
	return &FileWriter{
		dest: os.TempDir() + string(os.PathSeparator) + uuid.New().String() + string(os.PathSeparator),
	}
}

func NewFileWriter(dest string) *FileWriter {
	if dest == "" {
		return NewFileWriterToTempDir()
	}

	return &FileWriter{
		dest: strutil.EnsureSuffix(dest, string(os.PathSeparator)),
	}
}

func (c FileWriter) Write(files map[string]string) (string, error) {
	for k, v := range files {
		if err := c.write(strutil.JSONExtension(k), v); err != nil {
			return "", err
		}
	}
	return c.dest, nil
}

func (c FileWriter) write(filename string, contents string) (funcErr error) {
	// create the directory
	if err := os.MkdirAll(filepath.Dir(c.dest+filename), os.ModePerm); err != nil {
		return err
	}

	// create the file
	f, err := os.Create(c.dest + filename)

	if err != nil {
		return err
	}

	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			funcErr = errors.Join(funcErr, err)
		}
	}(f)

	_, err = f.WriteString(contents)

	return err
}
