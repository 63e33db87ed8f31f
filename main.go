package main

import (
	"fmt"

	"roamiq/config"
	"roamiq/di"
)

func main() {
	cfg := config.Load()
	container := di.NewContainer(cfg)
	defer container.BestTimeAPI.Close()

	fmt.Println("starting server!")
	container.HttpServer.Start()
}
