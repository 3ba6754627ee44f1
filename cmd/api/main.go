package main

import (
	"log"
	"sentimenttracker/cmd"

	_ "github.com/lib/pq"
)

func main() {
	apiHandler, secrets, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	apiHandler.Logger.Infof("starting api on port %d", secrets.Port)
	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
