package main

import (
	stdLog "log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env, using process environment")
	}
	Execute()
}
