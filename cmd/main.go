package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; credentials may come from the environment directly.
	_ = godotenv.Load()

	if err := rootCMD.Execute(); err != nil {
		os.Exit(1)
	}
}
