package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/Emmabm/web-lasrocas-sub000/cmd/app"
)

// @contact.name   Las Rocas
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
