// @title           jobboard API
// @version         1.0
// @description     Job posting search and management API.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "jobboard_backend/internal/app"

func main() {
	app.Run()
}
