package main

import (
	"codeberg.org/wepoker/server/internal/logger"
)

//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs --outputTypes go

// @title WePoker Game Server API
// @version 1.0.0
// @description Static front end and game status endpoints for WePoker
// @BasePath /

func main() {
	if err := Execute(); err != nil {
		logger.FatalErr(err, "wepoker server exited")
	}
}
