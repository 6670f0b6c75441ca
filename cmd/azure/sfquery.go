package main

import (
	"encoding/json"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/entry"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/environment"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/logger"
	"go.uber.org/zap"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

// queryHandler treats the request body as a JSON configuration file, using the same keys as the
// command line flags, and responds with every document keyed by file name.
func queryHandler(w http.ResponseWriter, r *http.Request) {
	respBytes, err := io.ReadAll(r.Body)

	if err != nil {
		handleError(err, http.StatusBadRequest, w)
		return
	}

	file, err := os.CreateTemp("", "*.json")

	if err != nil {
		handleError(err, http.StatusInternalServerError, w)
		return
	}

	// Clean up the file when we are done
	defer func(name string) {
		err := os.Remove(name)
		if err != nil {
			zap.L().Error(err.Error())
		}
	}(file.Name())

	if err := file.Close(); err != nil {
		handleError(err, http.StatusInternalServerError, w)
		return
	}

	if err := os.WriteFile(file.Name(), respBytes, 0600); err != nil {
		handleError(err, http.StatusInternalServerError, w)
		return
	}

	filename := filepath.Base(file.Name())
	extension := filepath.Ext(filename)
	filenameWithoutExtension := filename[0 : len(filename)-len(extension)]

	webArgs, _, err := args.ParseArgs([]string{"-configFile", filenameWithoutExtension, "-configPath", filepath.Dir(file.Name())})

	if err != nil {
		handleError(err, http.StatusBadRequest, w)
		return
	}

	if webArgs.Url == "" {
		handleError(errors.New("the configuration must include the cluster url"), http.StatusBadRequest, w)
		return
	}

	files, err := entry.Entry(webArgs)

	if err != nil {
		handleError(err, http.StatusInternalServerError, w)
		return
	}

	documents := map[string]json.RawMessage{}
	for name, contents := range files {
		documents[name] = json.RawMessage(contents)
	}

	body, err := json.Marshal(documents)

	if err != nil {
		handleError(err, http.StatusInternalServerError, w)
		return
	}

	w.Header()["Content-Type"] = []string{"application/json; charset=utf-8"}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		zap.L().Error(err.Error())
	}
}

func handleError(err error, status int, w http.ResponseWriter) {
	zap.L().Error(err.Error())
	w.WriteHeader(status)
	if _, err := w.Write([]byte(err.Error())); err != nil {
		zap.L().Error(err.Error())
	}
}

func main() {
	if err := logger.BuildLogger(os.Getenv("SFQUERY_LOGLEVEL")); err != nil {
		log.Fatal(err)
	}

	listenAddr := ":" + environment.GetPort()
	http.HandleFunc("/api/sfquery", queryHandler)
	log.Printf("About to listen on %s. Go to https://127.0.0.1%s/", listenAddr, listenAddr)
	log.Fatal(http.ListenAndServe(listenAddr, nil))
}
