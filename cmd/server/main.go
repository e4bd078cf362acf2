package main

import (
	"fmt"
	"os"

	"github.com/antonrybalko/webapp-go/internal/app"
)

func main() {
	service, err := app.NewService()
	if err != nil {
		fmt.Printf("Failed to initialize service: %v\n", err)
		os.Exit(1)
	}
	defer service.Cleanup()

	if err := service.Start(); err != nil {
		fmt.Printf("Failed to start service: %v\n", err)
		os.Exit(1)
	}

	service.WaitForShutdown()
}
