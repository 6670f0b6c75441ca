package main

import (
	"errors"
	"flag"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/entry"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/logger"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/output"
	"go.uber.org/zap"
	"os"
)

var Version = "development"

func main() {
	if err := logger.BuildLogger(""); err != nil {
		panic(err)
	}

	parseArgs, argsErrors, err := args.ParseArgs(os.Args[1:])

	if errors.Is(err, flag.ErrHelp) {
		zap.L().Error(argsErrors)
		os.Exit(2)
	} else if err != nil {
		zap.L().Error("got error: " + err.Error())
		zap.L().Error("argsErrors:\n" + argsErrors)
		os.Exit(1)
	}

	if err := logger.BuildLogger(parseArgs.LogLevel); err != nil {
		errorExit(err.Error())
	}

	if parseArgs.Version {
		zap.L().Info("Version: " + Version)
		os.Exit(0)
	}

	if parseArgs.Url == "" {
		errorExit("You must specify the cluster URL with the -url argument or the SF_CLUSTER_ENDPOINT environment variable")
	}

	if parseArgs.KeyFile != "" && parseArgs.CertFile == "" {
		errorExit("keyFile requires certFile to be defined")
	}

	if parseArgs.AadClientSecret != "" && !parseArgs.UseTokenAuth() {
		errorExit("aadClientSecret requires aadScope to be defined")
	}

	files, err := entry.Entry(parseArgs)

	if err != nil {
		errorExit(err.Error())
	}

	err = output.WriteFiles(files, parseArgs.Destination, parseArgs.Console)

	if err != nil {
		errorExit(err.Error())
	}
}

func errorExit(message string) {
	if len(message) == 0 {
		message = "No error message provided"
	}
	zap.L().Error(message)
	os.Exit(1)
}
