package output

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/writers"
	"go.uber.org/zap"
)

// WriteFiles writes the documents to dest, and to the console when console is set or no dest was given.
func WriteFiles(files map[string]string, dest string, console bool) error {
	if dest != "" {
		writer := writers.NewFileWriter(dest)
		location, err := writer.Write(files)
		if err != nil {
			return err
		}
		zap.L().Info("Wrote documents to " + location)
	}

	if console || dest == "" {
		consoleWriter := writers.ConsoleWriter{}
		if _, err := consoleWriter.Write(files); err != nil {
			return err
		}
	}

	return nil
}
