package main

import (
	"venturelens.dev/reportengine/cmd/app"
)

// @title          VentureLens Report Engine API
// @version        1.0.0
// @description    Renders startup-evaluation analysis results into benchmark charts and an exportable report document.
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @BasePath       /api
func main() {
	app.Run()
}
