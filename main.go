package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/ecohero-plus/ecohero-api/cmd/app"
)

// @title           EcoHero+ API
// @version         1.0
// @description     CRUD backend for the EcoHero+ eco-challenge rewards app.
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
